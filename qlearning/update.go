package qlearning

import (
	"errors"
	"math"

	"github.com/zeu5/rl-agents/core"
)

// LogTagLoss is the default tag under which the update records the magnitude
// of its pre-update TD error.
const LogTagLoss = "loss"

var ErrNoBatch = errors.New("qlearning: data provider returned no batch")

type QTableUpdateParams struct {
	LearningRate float64
	Discount     float64
	// ChangesPolicy is true for plain Q-learning: the table the update
	// mutates is the same one behavior policies read, so the change is
	// visible on the very next action selection.
	ChangesPolicy bool
	LossTag       string
}

func DefaultQTableUpdateParams(learningRate, discount float64) QTableUpdateParams {
	return QTableUpdateParams{
		LearningRate:  learningRate,
		Discount:      discount,
		ChangesPolicy: true,
		LossTag:       LogTagLoss,
	}
}

// QTableUpdate performs one tabular Q-learning update per call, consuming a
// single transition from its data provider. It exclusively owns the table it
// mutates and runs only once the shared warmup has elapsed.
type QTableUpdate struct {
	provider core.UpdateDataProvider
	tracker  *core.StepTracker
	table    *QTable
	params   QTableUpdateParams
}

var _ core.UpdatableComponent = &QTableUpdate{}

func NewQTableUpdate(provider core.UpdateDataProvider, tracker *core.StepTracker, table *QTable, params QTableUpdateParams) *QTableUpdate {
	if params.LossTag == "" {
		params.LossTag = LogTagLoss
	}
	return &QTableUpdate{
		provider: provider,
		tracker:  tracker,
		table:    table,
		params:   params,
	}
}

func (u *QTableUpdate) Table() *QTable {
	return u.table
}

// Update applies one TD step to the table and reports the absolute TD error
// before the update.
func (u *QTableUpdate) Update() (core.UpdateLog, error) {
	batches, err := u.provider.Data()
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, ErrNoBatch
	}

	// strip the batch dimension, Q-learning consumes single transitions
	batch := batches[0]
	state := int(batch.Observations.At(0, 0))
	action := int(batch.Actions.At(0, 0))
	nextState := int(batch.NextObservations.At(0, 0))
	reward := batch.Rewards.AtVec(0)
	terminated := batch.Terminateds.AtVec(0)

	qValue := u.table.At(state, action)
	nextQValue := u.table.MaxValue(nextState)
	// a terminal transition's target is exactly its observed reward
	target := reward + (1-terminated)*u.params.Discount*nextQValue
	u.table.Add(state, action, u.params.LearningRate*(target-qValue))

	return core.UpdateLog{u.params.LossTag: math.Abs(target - qValue)}, nil
}

// UpdateCondition is true exactly when the warmup period has elapsed.
func (u *QTableUpdate) UpdateCondition() bool {
	return u.tracker.WarmupDone()
}

func (u *QTableUpdate) ChangesPolicy() bool {
	return u.params.ChangesPolicy
}
