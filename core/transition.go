package core

import "gonum.org/v1/gonum/mat"

// TransitionBatch is a batch of one-step experience. Matrix fields hold one
// row per batch element, vector fields one entry per batch element. The
// batch dimension is present even when the batch is logically a single
// transition.
type TransitionBatch struct {
	Observations     *mat.Dense
	Actions          *mat.Dense
	NextObservations *mat.Dense
	Rewards          *mat.VecDense
	Terminateds      *mat.VecDense
}

// Size returns the number of transitions in the batch.
func (b *TransitionBatch) Size() int {
	r, _ := b.Observations.Dims()
	return r
}

// UpdateDataProvider supplies transition batches on demand. Implementations
// belong to the data-collection subsystem; updates only ever pull from them.
type UpdateDataProvider interface {
	Data() ([]*TransitionBatch, error)
}
