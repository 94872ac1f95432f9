package training

import (
	"gonum.org/v1/gonum/stat"

	"github.com/zeu5/rl-agents/core"
)

// LogAggregator accumulates update logs over a run and reports per-tag
// summaries.
type LogAggregator struct {
	series map[string][]float64
}

func NewLogAggregator() *LogAggregator {
	return &LogAggregator{
		series: make(map[string][]float64),
	}
}

func (a *LogAggregator) Add(log core.UpdateLog) {
	for tag, val := range log {
		a.series[tag] = append(a.series[tag], val)
	}
}

// Series returns every value recorded under tag, in arrival order.
func (a *LogAggregator) Series(tag string) []float64 {
	return a.series[tag]
}

func (a *LogAggregator) Count(tag string) int {
	return len(a.series[tag])
}

func (a *LogAggregator) Mean(tag string) float64 {
	vals, ok := a.series[tag]
	if !ok || len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

func (a *LogAggregator) Last(tag string) (float64, bool) {
	vals, ok := a.series[tag]
	if !ok || len(vals) == 0 {
		return 0, false
	}
	return vals[len(vals)-1], true
}

func (a *LogAggregator) Reset() {
	a.series = make(map[string][]float64)
}
