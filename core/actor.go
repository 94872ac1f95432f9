package core

import "gonum.org/v1/gonum/mat"

// Actor is a parameterized stochastic policy head operating on batches of
// observations, one observation per row. A PolicyBuilder and all the
// policies it builds share a single Actor by reference.
type Actor interface {
	// SampleAction draws one action per observation row and returns the
	// log-probability the actor assigned to each returned action at
	// sampling time.
	SampleAction(observations *mat.Dense) (actions *mat.Dense, logProbs *mat.VecDense)

	// MeanAction returns the deterministic mean action per observation row.
	MeanAction(observations *mat.Dense) *mat.Dense
}
