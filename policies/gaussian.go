package policies

import (
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zeu5/rl-agents/core"
)

// GaussianActor is a diagonal Gaussian policy head over a linear mean:
// mean = W*obs + b, stddev = exp(logStd) per action dimension.
//
// Parameters are mutated in place and never replaced, so every policy
// holding this actor observes an update without being rebuilt.
type GaussianActor struct {
	weights *mat.Dense    // actionDim x obsDim
	bias    *mat.VecDense // actionDim
	logStd  *mat.VecDense // actionDim

	rand *erand.Rand
}

var _ core.Actor = &GaussianActor{}

func NewGaussianActor(obsDim, actionDim int, seed uint64) *GaussianActor {
	return &GaussianActor{
		weights: mat.NewDense(actionDim, obsDim, nil),
		bias:    mat.NewVecDense(actionDim, nil),
		logStd:  mat.NewVecDense(actionDim, nil),
		rand:    erand.New(erand.NewSource(seed)),
	}
}

func (a *GaussianActor) ObsDim() int {
	_, c := a.weights.Dims()
	return c
}

func (a *GaussianActor) ActionDim() int {
	r, _ := a.weights.Dims()
	return r
}

// SampleAction draws one action per observation row and records the exact
// log-density assigned to it.
func (a *GaussianActor) SampleAction(observations *mat.Dense) (*mat.Dense, *mat.VecDense) {
	n, _ := observations.Dims()
	actionDim := a.ActionDim()
	actions := mat.NewDense(n, actionDim, nil)
	logProbs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		mean := a.meanRow(observations, i)
		logProb := 0.0
		for d := 0; d < actionDim; d++ {
			dist := distuv.Normal{
				Mu:    mean.AtVec(d),
				Sigma: math.Exp(a.logStd.AtVec(d)),
				Src:   a.rand,
			}
			x := dist.Rand()
			actions.Set(i, d, x)
			logProb += dist.LogProb(x)
		}
		logProbs.SetVec(i, logProb)
	}
	return actions, logProbs
}

// MeanAction returns the deterministic mean action per observation row.
func (a *GaussianActor) MeanAction(observations *mat.Dense) *mat.Dense {
	n, _ := observations.Dims()
	actionDim := a.ActionDim()
	actions := mat.NewDense(n, actionDim, nil)
	for i := 0; i < n; i++ {
		mean := a.meanRow(observations, i)
		for d := 0; d < actionDim; d++ {
			actions.Set(i, d, mean.AtVec(d))
		}
	}
	return actions
}

// LogProb returns the log-density the actor currently assigns to action
// given observation.
func (a *GaussianActor) LogProb(observation, action *mat.VecDense) float64 {
	mean := a.meanRow(batchOf(observation), 0)
	logProb := 0.0
	for d := 0; d < a.ActionDim(); d++ {
		dist := distuv.Normal{
			Mu:    mean.AtVec(d),
			Sigma: math.Exp(a.logStd.AtVec(d)),
		}
		logProb += dist.LogProb(action.AtVec(d))
	}
	return logProb
}

// SetWeights copies new values into the existing parameter storage.
func (a *GaussianActor) SetWeights(weights *mat.Dense, bias *mat.VecDense) {
	a.weights.Copy(weights)
	a.bias.CopyVec(bias)
}

// SetLogStd copies new per-dimension log standard deviations in place.
func (a *GaussianActor) SetLogStd(logStd *mat.VecDense) {
	a.logStd.CopyVec(logStd)
}

func (a *GaussianActor) meanRow(observations *mat.Dense, i int) *mat.VecDense {
	mean := mat.NewVecDense(a.ActionDim(), nil)
	mean.MulVec(a.weights, observations.RowView(i))
	mean.AddVec(mean, a.bias)
	return mean
}
