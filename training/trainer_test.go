package training_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/rl-agents/collect"
	"github.com/zeu5/rl-agents/core"
	"github.com/zeu5/rl-agents/envs"
	"github.com/zeu5/rl-agents/qlearning"
	"github.com/zeu5/rl-agents/training"
)

func newQLearningSetup(warmupSteps int) (*training.Trainer, *core.StepTracker, *qlearning.QTable) {
	env := envs.NewLineWorld(5)
	tracker := core.NewStepTracker(warmupSteps)
	table := qlearning.NewQTable(env.States(), env.Actions())
	provider := collect.NewOnlineProvider()

	update := qlearning.NewQTableUpdate(provider, tracker, table,
		qlearning.DefaultQTableUpdateParams(0.5, 0.9))
	builder := qlearning.NewQPolicyBuilder(table, 0.3, 7)
	rule := core.NewUpdateRule(builder, update)

	trainer := training.NewTrainer(env, rule, tracker, provider, nil, training.TrainerParams{
		Episodes: 300,
		Horizon:  20,
	})
	return trainer, tracker, table
}

func TestTrainerLearnsLineWorld(t *testing.T) {
	trainer, tracker, _ := newQLearningSetup(0)

	result, err := trainer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, result.Episodes)
	assert.Equal(t, result.TotalSteps, tracker.Steps())
	assert.Greater(t, trainer.Logs().Count(qlearning.LogTagLoss), 0)

	// the greedy policy walks straight to the rewarding end
	evalResult, err := trainer.Evaluate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, evalResult.Episodes)
	assert.Equal(t, 5.0, evalResult.TotalReward)
}

func TestTrainerHonorsWarmup(t *testing.T) {
	trainer, tracker, table := newQLearningSetup(1 << 30)

	result, err := trainer.Run(context.Background())
	require.NoError(t, err)
	require.Less(t, tracker.Steps(), 1<<30)

	// no update ran, so the table is untouched and nothing was logged
	assert.Equal(t, 0, trainer.Logs().Count(qlearning.LogTagLoss))
	for s := 0; s < table.States(); s++ {
		for a := 0; a < table.Actions(); a++ {
			assert.Zero(t, table.At(s, a))
		}
	}
	assert.Greater(t, result.TotalSteps, 0)
}

func TestTrainerEvaluateDoesNotAdvanceTracker(t *testing.T) {
	trainer, tracker, _ := newQLearningSetup(0)

	_, err := trainer.Run(context.Background())
	require.NoError(t, err)
	stepsAfterTraining := tracker.Steps()

	_, err = trainer.Evaluate(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, stepsAfterTraining, tracker.Steps())
}

func TestTrainerStopsOnCancel(t *testing.T) {
	trainer, _, _ := newQLearningSetup(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := trainer.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Episodes)
}
