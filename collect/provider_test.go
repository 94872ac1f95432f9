package collect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/collect"
)

func vec(vals ...float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), vals)
}

func TestOnlineProviderEmpty(t *testing.T) {
	provider := collect.NewOnlineProvider()
	_, err := provider.Data()
	require.ErrorIs(t, err, collect.ErrNoData)
}

func TestOnlineProviderSingleBatch(t *testing.T) {
	provider := collect.NewOnlineProvider()
	provider.Observe(vec(1, 2), vec(3), vec(4, 5), 0.5, true)

	batches, err := provider.Data()
	require.NoError(t, err)
	require.Len(t, batches, 1)

	batch := batches[0]
	assert.Equal(t, 1, batch.Size())
	assert.Equal(t, 1.0, batch.Observations.At(0, 0))
	assert.Equal(t, 2.0, batch.Observations.At(0, 1))
	assert.Equal(t, 3.0, batch.Actions.At(0, 0))
	assert.Equal(t, 4.0, batch.NextObservations.At(0, 0))
	assert.Equal(t, 0.5, batch.Rewards.AtVec(0))
	assert.Equal(t, 1.0, batch.Terminateds.AtVec(0))
}

func TestOnlineProviderKeepsLatest(t *testing.T) {
	provider := collect.NewOnlineProvider()
	provider.Observe(vec(1), vec(0), vec(2), 0, false)
	provider.Observe(vec(7), vec(1), vec(8), 1, false)

	batches, err := provider.Data()
	require.NoError(t, err)
	assert.Equal(t, 7.0, batches[0].Observations.At(0, 0))
	assert.Equal(t, 0.0, batches[0].Terminateds.AtVec(0))
}

func TestReplayBufferEmpty(t *testing.T) {
	buffer := collect.NewReplayBuffer(4, 2, 1)
	_, err := buffer.Data()
	require.ErrorIs(t, err, collect.ErrNoData)
}

func TestReplayBufferSamplesBatch(t *testing.T) {
	buffer := collect.NewReplayBuffer(8, 4, 1)
	for i := 0; i < 3; i++ {
		buffer.Observe(vec(float64(i)), vec(0), vec(float64(i+1)), float64(i), false)
	}
	assert.Equal(t, 3, buffer.Len())

	batches, err := buffer.Data()
	require.NoError(t, err)
	require.Len(t, batches, 1)
	// batch is capped at the number of stored transitions
	assert.Equal(t, 3, batches[0].Size())

	for i := 0; i < batches[0].Size(); i++ {
		obs := batches[0].Observations.At(i, 0)
		assert.Contains(t, []float64{0, 1, 2}, obs)
		assert.Equal(t, obs+1, batches[0].NextObservations.At(i, 0))
		assert.Equal(t, obs, batches[0].Rewards.AtVec(i))
	}
}

func TestReplayBufferWrapsAround(t *testing.T) {
	buffer := collect.NewReplayBuffer(2, 2, 1)
	for i := 0; i < 5; i++ {
		buffer.Observe(vec(float64(i)), vec(0), vec(0), 0, false)
	}
	assert.Equal(t, 2, buffer.Len())

	batches, err := buffer.Data()
	require.NoError(t, err)
	for i := 0; i < batches[0].Size(); i++ {
		// only the two most recent transitions survive
		assert.Contains(t, []float64{3, 4}, batches[0].Observations.At(i, 0))
	}
}
