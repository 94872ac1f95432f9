package core

// UpdateLog carries named scalar metrics produced by one update. A nil log
// means the update produced nothing to record.
type UpdateLog map[string]float64

// UpdatableComponent wraps one learning update behind a scheduling gate.
//
// Update must only be invoked when UpdateCondition is true. Components
// assume the precondition holds and do not re-check it; violating it is a
// driver bug.
type UpdatableComponent interface {
	// UpdateCondition reports whether the component is ready to run. It is
	// re-evaluated on every query and must not have side effects.
	UpdateCondition() bool

	// Update performs exactly one learning update step.
	Update() (UpdateLog, error)

	// ChangesPolicy reports whether running this update immediately alters
	// action selection, as opposed to e.g. refreshing a target copy that
	// only matters after a later sync. Fixed at construction.
	ChangesPolicy() bool
}

// UpdateRule ties an ordered set of updatable components to the policy
// builder whose behavior they affect.
type UpdateRule struct {
	builder    PolicyBuilder
	components []UpdatableComponent
}

func NewUpdateRule(builder PolicyBuilder, components ...UpdatableComponent) *UpdateRule {
	return &UpdateRule{
		builder:    builder,
		components: components,
	}
}

func (r *UpdateRule) Builder() PolicyBuilder {
	return r.builder
}

// UpdateResult reports one scheduling pass over a rule's components.
type UpdateResult struct {
	// Logs holds, in component order, the log of every component that ran
	// and returned one.
	Logs []UpdateLog
	// PolicyChanged is true when at least one executed component declares
	// that it changes action selection.
	PolicyChanged bool
	// RebuildNeeded is true when the driver must rebuild its policies to
	// observe the effect of this pass.
	RebuildNeeded bool
}

// Run checks every component's gate in order and runs the ready ones.
// The first update error aborts the pass.
func (r *UpdateRule) Run() (*UpdateResult, error) {
	result := &UpdateResult{
		Logs: make([]UpdateLog, 0, len(r.components)),
	}
	for _, c := range r.components {
		if !c.UpdateCondition() {
			continue
		}
		log, err := c.Update()
		if err != nil {
			return nil, err
		}
		if log != nil {
			result.Logs = append(result.Logs, log)
		}
		if c.ChangesPolicy() {
			result.PolicyChanged = true
		}
	}
	if result.PolicyChanged && r.builder != nil {
		result.RebuildNeeded = r.builder.RequiresRebuildOnPolicyChange()
	}
	return result, nil
}
