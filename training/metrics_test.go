package training_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeu5/rl-agents/core"
	"github.com/zeu5/rl-agents/training"
)

func TestLogAggregator(t *testing.T) {
	agg := training.NewLogAggregator()

	_, ok := agg.Last("loss")
	assert.False(t, ok)

	agg.Add(core.UpdateLog{"loss": 1.0})
	agg.Add(core.UpdateLog{"loss": 0.5, "entropy": 2.0})

	assert.Equal(t, 2, agg.Count("loss"))
	assert.Equal(t, []float64{1.0, 0.5}, agg.Series("loss"))
	assert.InDelta(t, 0.75, agg.Mean("loss"), 1e-12)

	last, ok := agg.Last("entropy")
	assert.True(t, ok)
	assert.Equal(t, 2.0, last)

	agg.Reset()
	assert.Equal(t, 0, agg.Count("loss"))
}
