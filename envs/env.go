package envs

import "gonum.org/v1/gonum/mat"

// Environment is an episodic environment with vector observations and
// actions. Discrete environments encode indices as 1-dimensional vectors.
type Environment interface {
	Reset() (*mat.VecDense, error)
	Step(action *mat.VecDense) (next *mat.VecDense, reward float64, terminated bool, err error)
}

func obsOf(state int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(state)})
}
