package cmd

import "github.com/spf13/cobra"

var configPath string

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rl-agents",
		Short: "Train and evaluate reinforcement learning agents",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(
		QLearningCommand(),
		ActorCommand(),
	)

	return cmd
}
