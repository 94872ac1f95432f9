package core

// StepTracker is the shared source of training-progress truth. The training
// driver constructs one per run and hands it by reference to every component
// that gates on it. The driver is the only writer; components only read.
type StepTracker struct {
	steps       int
	warmupSteps int
}

// NewStepTracker instantiates a tracker whose warmup completes after
// warmupSteps recorded interaction steps.
func NewStepTracker(warmupSteps int) *StepTracker {
	return &StepTracker{warmupSteps: warmupSteps}
}

// Advance records n elapsed interaction steps. The count never decreases,
// negative n is ignored.
func (t *StepTracker) Advance(n int) {
	if n < 0 {
		return
	}
	t.steps += n
}

func (t *StepTracker) Steps() int {
	return t.steps
}

// WarmupDone reports whether enough steps have elapsed for learning updates
// to run. Before any step is recorded it is false for any positive warmup.
func (t *StepTracker) WarmupDone() bool {
	return t.steps >= t.warmupSteps
}
