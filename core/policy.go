package core

import "gonum.org/v1/gonum/mat"

// Info carries named auxiliary values recorded alongside an action, such as
// the log-probability a stochastic policy assigned to it. Deterministic
// policies return an empty Info.
type Info map[string]float64

// Policy maps a single unbatched observation to a single unbatched action.
// Act must not mutate the model it reads from and costs one forward pass.
type Policy interface {
	Act(observation *mat.VecDense) (*mat.VecDense, Info)
}

// PolicyBuilder constructs Policy instances over shared learnable state.
// Every policy built by the same builder references the same underlying
// parameters; no copy is made, so an in-place parameter update performed
// elsewhere is immediately visible to already-built policies.
type PolicyBuilder interface {
	BuildTrainingPolicy() Policy
	BuildEvaluationPolicy() Policy

	// RequiresRebuildOnPolicyChange reports whether a driver must build a
	// fresh Policy after a learning update to observe the new parameters.
	// False whenever updates mutate state that built policies already
	// reference; true when an update replaces the model wholesale.
	RequiresRebuildOnPolicyChange() bool
}
