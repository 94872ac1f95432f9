package qlearning

import (
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/rl-agents/core"
)

// Discrete observations and actions travel as 1-dimensional vectors holding
// the index, matching the unbatched Policy contract.
func actionVec(action int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(action)})
}

func stateOf(observation *mat.VecDense) int {
	return int(observation.AtVec(0))
}

// EpsilonGreedyPolicy reads the shared Q table and picks a greedy action,
// exploring uniformly with probability epsilon. Greedy ties are broken
// uniformly at random.
type EpsilonGreedyPolicy struct {
	table   *QTable
	epsilon float64
	rand    *erand.Rand
}

var _ core.Policy = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(table *QTable, epsilon float64, seed uint64) *EpsilonGreedyPolicy {
	return &EpsilonGreedyPolicy{
		table:   table,
		epsilon: epsilon,
		rand:    erand.New(erand.NewSource(seed)),
	}
}

func (p *EpsilonGreedyPolicy) Act(observation *mat.VecDense) (*mat.VecDense, core.Info) {
	state := stateOf(observation)
	if p.rand.Float64() < p.epsilon {
		return actionVec(p.rand.Intn(p.table.Actions())), core.Info{}
	}
	return actionVec(p.table.ArgMax(state, p.rand)), core.Info{}
}

// GreedyPolicy deterministically picks the lowest-indexed best action.
type GreedyPolicy struct {
	table *QTable
}

var _ core.Policy = &GreedyPolicy{}

func NewGreedyPolicy(table *QTable) *GreedyPolicy {
	return &GreedyPolicy{table: table}
}

func (p *GreedyPolicy) Act(observation *mat.VecDense) (*mat.VecDense, core.Info) {
	return actionVec(p.table.BestAction(stateOf(observation))), core.Info{}
}

// SoftmaxPolicy samples actions with probability proportional to
// exp(q/temperature), normalized against the row maximum for stability.
type SoftmaxPolicy struct {
	table       *QTable
	temperature float64
	rand        *erand.Rand
}

var _ core.Policy = &SoftmaxPolicy{}

func NewSoftmaxPolicy(table *QTable, temperature float64, seed uint64) *SoftmaxPolicy {
	return &SoftmaxPolicy{
		table:       table,
		temperature: temperature,
		rand:        erand.New(erand.NewSource(seed)),
	}
}

func (p *SoftmaxPolicy) Act(observation *mat.VecDense) (*mat.VecDense, core.Info) {
	state := stateOf(observation)
	numActions := p.table.Actions()

	largest := p.table.MaxValue(state)
	sum := float64(0)
	weights := make([]float64, numActions)
	for a := 0; a < numActions; a++ {
		weights[a] = math.Exp((p.table.At(state, a) - largest) / p.temperature)
		sum += weights[a]
	}
	for a := range weights {
		weights[a] /= sum
	}

	action, ok := sampleuv.NewWeighted(weights, p.rand).Take()
	if !ok {
		action = p.table.BestAction(state)
	}
	return actionVec(action), core.Info{}
}

// QPolicyBuilder builds policies over one shared Q table. The table is
// mutated in place by QTableUpdate, so built policies never need a rebuild.
type QPolicyBuilder struct {
	table   *QTable
	epsilon float64
	seed    uint64
}

var _ core.PolicyBuilder = &QPolicyBuilder{}

func NewQPolicyBuilder(table *QTable, epsilon float64, seed uint64) *QPolicyBuilder {
	return &QPolicyBuilder{
		table:   table,
		epsilon: epsilon,
		seed:    seed,
	}
}

func (b *QPolicyBuilder) BuildTrainingPolicy() core.Policy {
	return NewEpsilonGreedyPolicy(b.table, b.epsilon, b.seed)
}

func (b *QPolicyBuilder) BuildEvaluationPolicy() core.Policy {
	return NewGreedyPolicy(b.table)
}

// RequiresRebuildOnPolicyChange is always false: the table is shared by
// reference and mutated in place.
func (b *QPolicyBuilder) RequiresRebuildOnPolicyChange() bool {
	return false
}
