package training

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
	"github.com/zeu5/rl-agents/envs"
)

// TransitionObserver receives every transition as it is collected. Data
// providers implement it to feed their update components.
type TransitionObserver interface {
	Observe(obs, action, nextObs *mat.VecDense, reward float64, terminated bool)
}

type TrainerParams struct {
	Episodes int
	Horizon  int

	// Progress is an optional live status line for interactive runs.
	Progress *Progress
}

// Trainer owns the single-threaded interaction/update loop: act, observe,
// advance the step tracker, run whichever updates are ready. It is the sole
// writer of the tracker; components only read it.
type Trainer struct {
	env      envs.Environment
	rule     *core.UpdateRule
	tracker  *core.StepTracker
	observer TransitionObserver
	logger   *zap.Logger
	logs     *LogAggregator
	params   TrainerParams
}

func NewTrainer(env envs.Environment, rule *core.UpdateRule, tracker *core.StepTracker, observer TransitionObserver, logger *zap.Logger, params TrainerParams) *Trainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trainer{
		env:      env,
		rule:     rule,
		tracker:  tracker,
		observer: observer,
		logger:   logger,
		logs:     NewLogAggregator(),
		params:   params,
	}
}

// Logs exposes the update metrics accumulated so far.
func (t *Trainer) Logs() *LogAggregator {
	return t.logs
}

// Result accounts for one training or evaluation run.
type Result struct {
	Episodes           int
	TerminatedEpisodes int
	TotalSteps         int
	TotalReward        float64
	EpisodeReturns     []float64
}

// Run trains for the configured number of episodes. The policy is rebuilt
// mid-run only when the update rule reports that an executed update is not
// already visible through the shared model state.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	policy := t.rule.Builder().BuildTrainingPolicy()
	result := &Result{
		EpisodeReturns: make([]float64, 0, t.params.Episodes),
	}

	for episode := 0; episode < t.params.Episodes; episode++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		obs, err := t.env.Reset()
		if err != nil {
			return result, fmt.Errorf("reset environment: %w", err)
		}

		episodeReturn := 0.0
		for step := 0; step < t.params.Horizon; step++ {
			action, info := policy.Act(obs)
			next, reward, terminated, err := t.env.Step(action)
			if err != nil {
				return result, fmt.Errorf("environment step: %w", err)
			}
			if len(info) > 0 {
				t.logger.Debug("act", logFields(info)...)
			}

			t.observer.Observe(obs, action, next, reward, terminated)
			t.tracker.Advance(1)
			result.TotalSteps++
			episodeReturn += reward

			updateResult, err := t.rule.Run()
			if err != nil {
				return result, fmt.Errorf("update: %w", err)
			}
			for _, log := range updateResult.Logs {
				t.logs.Add(log)
				t.logger.Debug("update", logFields(log)...)
			}
			if updateResult.RebuildNeeded {
				policy = t.rule.Builder().BuildTrainingPolicy()
			}

			if terminated {
				result.TerminatedEpisodes++
				break
			}
			obs = next
		}

		result.Episodes++
		result.TotalReward += episodeReturn
		result.EpisodeReturns = append(result.EpisodeReturns, episodeReturn)

		t.logger.Info("episode done",
			zap.Int("episode", episode),
			zap.Float64("return", episodeReturn),
			zap.Int("total_steps", result.TotalSteps),
		)
		if t.params.Progress != nil {
			t.params.Progress.Update(
				"Episode %d/%d, Steps: %d, Return: %.3f",
				episode+1, t.params.Episodes, result.TotalSteps, episodeReturn,
			)
		}
	}
	return result, nil
}

// Evaluate rolls out the evaluation policy. No transition is observed, the
// tracker is not advanced and no update runs.
func (t *Trainer) Evaluate(ctx context.Context, episodes int) (*Result, error) {
	policy := t.rule.Builder().BuildEvaluationPolicy()
	result := &Result{
		EpisodeReturns: make([]float64, 0, episodes),
	}

	for episode := 0; episode < episodes; episode++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		obs, err := t.env.Reset()
		if err != nil {
			return result, fmt.Errorf("reset environment: %w", err)
		}

		episodeReturn := 0.0
		for step := 0; step < t.params.Horizon; step++ {
			action, _ := policy.Act(obs)
			next, reward, terminated, err := t.env.Step(action)
			if err != nil {
				return result, fmt.Errorf("environment step: %w", err)
			}
			result.TotalSteps++
			episodeReturn += reward
			if terminated {
				result.TerminatedEpisodes++
				break
			}
			obs = next
		}

		result.Episodes++
		result.TotalReward += episodeReturn
		result.EpisodeReturns = append(result.EpisodeReturns, episodeReturn)
	}
	return result, nil
}
