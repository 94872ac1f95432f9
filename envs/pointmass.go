package envs

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PointMass is a 1-dimensional continuous control task: the observation is
// the position x, the action a displacement added to it. The reward is
// -|x| and the episode terminates once the mass is within Tolerance of the
// origin.
type PointMass struct {
	Start     float64
	Tolerance float64

	position float64
}

var _ Environment = &PointMass{}

func NewPointMass(start, tolerance float64) *PointMass {
	return &PointMass{
		Start:     start,
		Tolerance: tolerance,
	}
}

func (p *PointMass) Reset() (*mat.VecDense, error) {
	p.position = p.Start
	return mat.NewVecDense(1, []float64{p.position}), nil
}

func (p *PointMass) Step(action *mat.VecDense) (*mat.VecDense, float64, bool, error) {
	p.position += action.AtVec(0)
	obs := mat.NewVecDense(1, []float64{p.position})
	reward := -math.Abs(p.position)
	return obs, reward, math.Abs(p.position) <= p.Tolerance, nil
}
