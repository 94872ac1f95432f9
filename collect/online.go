package collect

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
)

var ErrNoData = errors.New("collect: no transition recorded yet")

// OnlineProvider serves the most recent transition as a batch of size one.
// It backs strictly on-policy updates that consume each transition as it is
// collected.
type OnlineProvider struct {
	latest *core.TransitionBatch
}

var _ core.UpdateDataProvider = &OnlineProvider{}

func NewOnlineProvider() *OnlineProvider {
	return &OnlineProvider{}
}

// Observe records one transition, replacing the previous one. Fields are
// wrapped with a batch dimension of one.
func (p *OnlineProvider) Observe(obs, action, nextObs *mat.VecDense, reward float64, terminated bool) {
	p.latest = singleBatch(obs, action, nextObs, reward, terminated)
}

func (p *OnlineProvider) Data() ([]*core.TransitionBatch, error) {
	if p.latest == nil {
		return nil, ErrNoData
	}
	return []*core.TransitionBatch{p.latest}, nil
}

func singleBatch(obs, action, nextObs *mat.VecDense, reward float64, terminated bool) *core.TransitionBatch {
	term := 0.0
	if terminated {
		term = 1.0
	}
	return &core.TransitionBatch{
		Observations:     rowOf(obs),
		Actions:          rowOf(action),
		NextObservations: rowOf(nextObs),
		Rewards:          mat.NewVecDense(1, []float64{reward}),
		Terminateds:      mat.NewVecDense(1, []float64{term}),
	}
}

func rowOf(v *mat.VecDense) *mat.Dense {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return mat.NewDense(1, len(data), data)
}
