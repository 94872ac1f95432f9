package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
	"github.com/zeu5/rl-agents/envs"
	"github.com/zeu5/rl-agents/policies"
	"github.com/zeu5/rl-agents/training"
)

// The actor demo rolls out a randomly initialized Gaussian actor on a point
// mass task, once stochastically and once with the deterministic mean, to
// show the two policy variants built over one shared actor.
func ActorCommand() *cobra.Command {
	var episodes int

	cmd := &cobra.Command{
		Use:   "actor",
		Short: "Roll out a stochastic Gaussian actor on a point mass task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := training.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runActor(cfg, episodes)
		},
	}
	cmd.Flags().IntVar(&episodes, "episodes", 10, "rollout episodes")

	return cmd
}

func runActor(cfg *training.Config, episodes int) error {
	logger, err := training.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	env := envs.NewPointMass(1.0, 0.05)
	actor := policies.NewGaussianActor(1, 1, cfg.Seed)
	// pull the mass toward the origin at half its position
	actor.SetWeights(mat.NewDense(1, 1, []float64{-0.5}), mat.NewVecDense(1, nil))
	actor.SetLogStd(mat.NewVecDense(1, []float64{-2}))

	space := core.NewContinuousActionSpace([]float64{-1}, []float64{1})
	builder := policies.NewActorPolicyBuilder(actor, space)
	rule := core.NewUpdateRule(builder)
	tracker := core.NewStepTracker(0)

	trainer := training.NewTrainer(env, rule, tracker, nopObserver{}, logger, training.TrainerParams{
		Episodes: episodes,
		Horizon:  cfg.Horizon,
	})

	result, err := trainer.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info("stochastic rollout done",
		zap.Int("episodes", result.Episodes),
		zap.Float64("mean_return", result.TotalReward/float64(result.Episodes)),
	)

	evalResult, err := trainer.Evaluate(context.Background(), episodes)
	if err != nil {
		return err
	}
	logger.Info("deterministic rollout done",
		zap.Int("episodes", evalResult.Episodes),
		zap.Float64("mean_return", evalResult.TotalReward/float64(evalResult.Episodes)),
	)
	return nil
}

// nopObserver discards transitions; the demo performs no learning updates.
type nopObserver struct{}

func (nopObserver) Observe(_, _, _ *mat.VecDense, _ float64, _ bool) {}
