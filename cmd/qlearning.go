package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeu5/rl-agents/collect"
	"github.com/zeu5/rl-agents/core"
	"github.com/zeu5/rl-agents/envs"
	"github.com/zeu5/rl-agents/qlearning"
	"github.com/zeu5/rl-agents/training"
)

func QLearningCommand() *cobra.Command {
	var rows, cols, evalEpisodes int

	cmd := &cobra.Command{
		Use:   "qlearning",
		Short: "Train a tabular Q-learning agent on a grid world",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := training.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runQLearning(cfg, rows, cols, evalEpisodes)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "grid columns")
	cmd.Flags().IntVar(&evalEpisodes, "eval-episodes", 10, "greedy evaluation episodes after training")

	return cmd
}

func runQLearning(cfg *training.Config, rows, cols, evalEpisodes int) error {
	logger, err := training.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.Record(filepath.Join(cfg.SavePath, "config.json")); err != nil {
		return err
	}

	env := envs.NewGridWorld(rows, cols)
	tracker := core.NewStepTracker(cfg.WarmupSteps)
	table := qlearning.NewQTable(env.States(), env.Actions())
	provider := collect.NewOnlineProvider()

	update := qlearning.NewQTableUpdate(provider, tracker, table,
		qlearning.DefaultQTableUpdateParams(cfg.LearningRate, cfg.Discount))
	builder := qlearning.NewQPolicyBuilder(table, cfg.Epsilon, cfg.Seed)
	rule := core.NewUpdateRule(builder, update)

	progress := training.NewProgress()
	defer progress.Stop()

	trainer := training.NewTrainer(env, rule, tracker, provider, logger, training.TrainerParams{
		Episodes: cfg.Episodes,
		Horizon:  cfg.Horizon,
		Progress: progress,
	})

	result, err := trainer.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info("training done",
		zap.Int("episodes", result.Episodes),
		zap.Int("total_steps", result.TotalSteps),
		zap.Float64("mean_loss", trainer.Logs().Mean(qlearning.LogTagLoss)),
	)

	if err := table.Record(filepath.Join(cfg.SavePath, "qtable")); err != nil {
		return err
	}

	evalResult, err := trainer.Evaluate(context.Background(), evalEpisodes)
	if err != nil {
		return err
	}
	logger.Info("evaluation done",
		zap.Int("episodes", evalResult.Episodes),
		zap.Float64("mean_return", evalResult.TotalReward/float64(evalResult.Episodes)),
	)
	return nil
}
