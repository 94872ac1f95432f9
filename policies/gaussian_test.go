package policies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGaussianActorBatchShapes(t *testing.T) {
	actor := newTestActor(t)

	obs := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})
	actions, logProbs := actor.SampleAction(obs)

	rows, cols := actions.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 3, logProbs.Len())
}

func TestGaussianActorSampleConcentratesOnMean(t *testing.T) {
	actor := newTestActor(t)
	// shrink the distribution to a point
	actor.SetLogStd(mat.NewVecDense(2, []float64{-20, -20}))

	obs := mat.NewDense(1, 2, []float64{0.4, -0.2})
	actions, _ := actor.SampleAction(obs)
	means := actor.MeanAction(obs)

	require.True(t, mat.EqualApprox(means, actions, 1e-6))
}
