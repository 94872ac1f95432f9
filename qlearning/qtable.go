package qlearning

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QTable is a dense table of action values indexed by discrete state and
// action. It is created once, mutated in place and never resized; every
// policy reading it sees an update on its next action selection.
type QTable struct {
	values *mat.Dense
}

// NewQTable instantiates a zero-initialized table with the given dimensions.
func NewQTable(states, actions int) *QTable {
	return &QTable{
		values: mat.NewDense(states, actions, nil),
	}
}

func (q *QTable) States() int {
	r, _ := q.values.Dims()
	return r
}

func (q *QTable) Actions() int {
	_, c := q.values.Dims()
	return c
}

func (q *QTable) At(state, action int) float64 {
	return q.values.At(state, action)
}

func (q *QTable) Set(state, action int, val float64) {
	q.values.Set(state, action, val)
}

func (q *QTable) Add(state, action int, delta float64) {
	q.values.Set(state, action, q.values.At(state, action)+delta)
}

// MaxValue returns the largest action value at state.
func (q *QTable) MaxValue(state int) float64 {
	return floats.Max(q.values.RawRowView(state))
}

// BestAction returns the lowest-indexed action with the largest value at
// state.
func (q *QTable) BestAction(state int) int {
	row := q.values.RawRowView(state)
	best := 0
	for a, val := range row {
		if val > row[best] {
			best = a
		}
	}
	return best
}

// ArgMax returns an action with the largest value at state, breaking ties
// uniformly at random.
func (q *QTable) ArgMax(state int, r *erand.Rand) int {
	row := q.values.RawRowView(state)
	maxVal := math.Inf(-1)
	maxActions := make([]int, 0, len(row))
	for a, val := range row {
		if val > maxVal {
			maxActions = maxActions[:0]
			maxVal = val
		}
		if val == maxVal {
			maxActions = append(maxActions, a)
		}
	}
	return maxActions[r.Intn(len(maxActions))]
}

type qTableRow struct {
	State  int       `json:"state"`
	Values []float64 `json:"values"`
}

// Record writes the table to path+".jsonl", one state per line.
func (q *QTable) Record(path string) error {
	bs := new(bytes.Buffer)
	for s := 0; s < q.States(); s++ {
		row := qTableRow{State: s, Values: q.values.RawRowView(s)}
		rowBS, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("error encoding row: %s", err)
		}
		bs.Write(rowBS)
		bs.Write([]byte("\n"))
	}
	return os.WriteFile(path+".jsonl", bs.Bytes(), 0644)
}

// Read fills the table in place from a file written by Record. Rows for
// states outside the table's dimensions are a caller error.
func (q *QTable) Read(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading file: %s", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var row qTableRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			return fmt.Errorf("error reading file contents: %s", err)
		}
		q.values.SetRow(row.State, row.Values)
	}
	return scanner.Err()
}
