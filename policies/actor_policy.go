package policies

import (
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
)

// InfoKeyLogProb is the info key under which the training policy records the
// log-probability of the action it returned. Policy-gradient updates
// recompute importance ratios against this stored value, so it must be the
// exact density the actor assigned at sampling time.
const InfoKeyLogProb = "log_prob"

// TrainingPolicy samples actions from a shared actor and records their
// log-probabilities.
type TrainingPolicy struct {
	actor       core.Actor
	actionSpace core.ContinuousActionSpace
}

var _ core.Policy = &TrainingPolicy{}

func NewTrainingPolicy(actor core.Actor, actionSpace core.ContinuousActionSpace) *TrainingPolicy {
	return &TrainingPolicy{
		actor:       actor,
		actionSpace: actionSpace,
	}
}

// Act lifts the observation into a batch of size one, samples from the
// actor and strips the batch dimension from both outputs.
func (p *TrainingPolicy) Act(observation *mat.VecDense) (*mat.VecDense, core.Info) {
	batch := batchOf(observation)
	actions, logProbs := p.actor.SampleAction(batch)
	action := unbatch(actions)
	return action, core.Info{InfoKeyLogProb: logProbs.AtVec(0)}
}

// EvaluationPolicy returns the actor's deterministic mean action. There is
// no stochastic quantity to report, so the returned info is always empty.
type EvaluationPolicy struct {
	actor       core.Actor
	actionSpace core.ContinuousActionSpace
}

var _ core.Policy = &EvaluationPolicy{}

func NewEvaluationPolicy(actor core.Actor, actionSpace core.ContinuousActionSpace) *EvaluationPolicy {
	return &EvaluationPolicy{
		actor:       actor,
		actionSpace: actionSpace,
	}
}

func (p *EvaluationPolicy) Act(observation *mat.VecDense) (*mat.VecDense, core.Info) {
	batch := batchOf(observation)
	actions := p.actor.MeanAction(batch)
	return unbatch(actions), core.Info{}
}

// ActorPolicyBuilder builds training and evaluation policies over one shared
// actor. Each call yields an independent policy object; all of them
// reference the same actor.
type ActorPolicyBuilder struct {
	actor       core.Actor
	actionSpace core.ContinuousActionSpace
}

var _ core.PolicyBuilder = &ActorPolicyBuilder{}

func NewActorPolicyBuilder(actor core.Actor, actionSpace core.ContinuousActionSpace) *ActorPolicyBuilder {
	return &ActorPolicyBuilder{
		actor:       actor,
		actionSpace: actionSpace,
	}
}

func (b *ActorPolicyBuilder) BuildTrainingPolicy() core.Policy {
	return NewTrainingPolicy(b.actor, b.actionSpace)
}

func (b *ActorPolicyBuilder) BuildEvaluationPolicy() core.Policy {
	return NewEvaluationPolicy(b.actor, b.actionSpace)
}

// RequiresRebuildOnPolicyChange is always false: updates mutate the actor's
// parameters in place and every built policy already references that actor.
func (b *ActorPolicyBuilder) RequiresRebuildOnPolicyChange() bool {
	return false
}
