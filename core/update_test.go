package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zeu5/rl-agents/core"
)

type stubComponent struct {
	ready   bool
	changes bool
	log     core.UpdateLog
	err     error
	calls   int
}

func (s *stubComponent) UpdateCondition() bool {
	return s.ready
}

func (s *stubComponent) Update() (core.UpdateLog, error) {
	s.calls++
	return s.log, s.err
}

func (s *stubComponent) ChangesPolicy() bool {
	return s.changes
}

type stubPolicy struct{}

func (stubPolicy) Act(obs *mat.VecDense) (*mat.VecDense, core.Info) {
	return obs, core.Info{}
}

type stubBuilder struct {
	rebuild bool
}

func (b *stubBuilder) BuildTrainingPolicy() core.Policy   { return stubPolicy{} }
func (b *stubBuilder) BuildEvaluationPolicy() core.Policy { return stubPolicy{} }
func (b *stubBuilder) RequiresRebuildOnPolicyChange() bool {
	return b.rebuild
}

func TestUpdateRuleSkipsGatedComponents(t *testing.T) {
	gated := &stubComponent{ready: false, changes: true}
	ready := &stubComponent{ready: true, log: core.UpdateLog{"loss": 1.5}}

	rule := core.NewUpdateRule(&stubBuilder{}, gated, ready)
	result, err := rule.Run()
	require.NoError(t, err)

	assert.Equal(t, 0, gated.calls)
	assert.Equal(t, 1, ready.calls)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, 1.5, result.Logs[0]["loss"])
	assert.False(t, result.PolicyChanged, "a gated component must not mark the policy changed")
}

func TestUpdateRuleOmitsNilLogs(t *testing.T) {
	silent := &stubComponent{ready: true}
	rule := core.NewUpdateRule(&stubBuilder{}, silent)

	result, err := rule.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, silent.calls)
	assert.Empty(t, result.Logs)
}

func TestUpdateRuleRebuildSignal(t *testing.T) {
	cases := []struct {
		name          string
		changesPolicy bool
		needsRebuild  bool
		want          bool
	}{
		{"in place update", true, false, false},
		{"replacing update", true, true, true},
		{"non policy update", false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comp := &stubComponent{ready: true, changes: tc.changesPolicy}
			rule := core.NewUpdateRule(&stubBuilder{rebuild: tc.needsRebuild}, comp)

			result, err := rule.Run()
			require.NoError(t, err)
			assert.Equal(t, tc.changesPolicy, result.PolicyChanged)
			assert.Equal(t, tc.want, result.RebuildNeeded)
		})
	}
}

func TestUpdateRuleStopsOnError(t *testing.T) {
	errBoom := errors.New("boom")
	failing := &stubComponent{ready: true, err: errBoom}
	after := &stubComponent{ready: true}

	rule := core.NewUpdateRule(&stubBuilder{}, failing, after)
	_, err := rule.Run()
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, after.calls, "components after a failure must not run")
}
