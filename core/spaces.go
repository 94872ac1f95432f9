package core

import "gonum.org/v1/gonum/mat"

// ContinuousActionSpace describes the legal action range of a policy. It is
// carried as metadata only; the actor is trusted to respect the bounds.
type ContinuousActionSpace struct {
	Low  *mat.VecDense
	High *mat.VecDense
}

func NewContinuousActionSpace(low, high []float64) ContinuousActionSpace {
	return ContinuousActionSpace{
		Low:  mat.NewVecDense(len(low), low),
		High: mat.NewVecDense(len(high), high),
	}
}

func (s ContinuousActionSpace) Dim() int {
	return s.Low.Len()
}

// DiscreteActionSpace describes a finite action set {0, ..., N-1}.
type DiscreteActionSpace struct {
	N int
}
