package collect

import (
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
)

// ReplayBuffer is a fixed-capacity ring of transitions sampled uniformly
// with replacement. Data serves one batch of up to batchSize transitions.
type ReplayBuffer struct {
	observations     [][]float64
	actions          [][]float64
	nextObservations [][]float64
	rewards          []float64
	terminateds      []float64

	capacity  int
	batchSize int
	size      int
	next      int

	rand *erand.Rand
}

var _ core.UpdateDataProvider = &ReplayBuffer{}

func NewReplayBuffer(capacity, batchSize int, seed uint64) *ReplayBuffer {
	return &ReplayBuffer{
		observations:     make([][]float64, capacity),
		actions:          make([][]float64, capacity),
		nextObservations: make([][]float64, capacity),
		rewards:          make([]float64, capacity),
		terminateds:      make([]float64, capacity),
		capacity:         capacity,
		batchSize:        batchSize,
		rand:             erand.New(erand.NewSource(seed)),
	}
}

func (b *ReplayBuffer) Len() int {
	return b.size
}

// Observe appends one transition, overwriting the oldest one once the
// buffer is full.
func (b *ReplayBuffer) Observe(obs, action, nextObs *mat.VecDense, reward float64, terminated bool) {
	b.observations[b.next] = vecData(obs)
	b.actions[b.next] = vecData(action)
	b.nextObservations[b.next] = vecData(nextObs)
	b.rewards[b.next] = reward
	b.terminateds[b.next] = 0.0
	if terminated {
		b.terminateds[b.next] = 1.0
	}

	b.next = (b.next + 1) % b.capacity
	if b.size < b.capacity {
		b.size++
	}
}

func (b *ReplayBuffer) Data() ([]*core.TransitionBatch, error) {
	if b.size == 0 {
		return nil, ErrNoData
	}
	n := b.batchSize
	if n > b.size {
		n = b.size
	}

	obsDim := len(b.observations[0])
	actionDim := len(b.actions[0])
	batch := &core.TransitionBatch{
		Observations:     mat.NewDense(n, obsDim, nil),
		Actions:          mat.NewDense(n, actionDim, nil),
		NextObservations: mat.NewDense(n, obsDim, nil),
		Rewards:          mat.NewVecDense(n, nil),
		Terminateds:      mat.NewVecDense(n, nil),
	}
	for i := 0; i < n; i++ {
		j := b.rand.Intn(b.size)
		batch.Observations.SetRow(i, b.observations[j])
		batch.Actions.SetRow(i, b.actions[j])
		batch.NextObservations.SetRow(i, b.nextObservations[j])
		batch.Rewards.SetVec(i, b.rewards[j])
		batch.Terminateds.SetVec(i, b.terminateds[j])
	}
	return []*core.TransitionBatch{batch}, nil
}

func vecData(v *mat.VecDense) []float64 {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return data
}
