package envs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	GridUp = iota
	GridDown
	GridLeft
	GridRight

	gridNumActions
)

// GridWorld is a rows x cols grid. The agent starts in the top-left cell,
// the episode terminates with reward 1 in the bottom-right cell, every other
// step has reward 0. Moves off the grid leave the agent in place.
type GridWorld struct {
	rows int
	cols int

	state int
}

var _ Environment = &GridWorld{}

func NewGridWorld(rows, cols int) *GridWorld {
	return &GridWorld{
		rows: rows,
		cols: cols,
	}
}

func (g *GridWorld) States() int {
	return g.rows * g.cols
}

func (g *GridWorld) Actions() int {
	return gridNumActions
}

func (g *GridWorld) Reset() (*mat.VecDense, error) {
	g.state = 0
	return obsOf(g.state), nil
}

func (g *GridWorld) Step(action *mat.VecDense) (*mat.VecDense, float64, bool, error) {
	row := g.state / g.cols
	col := g.state % g.cols
	switch int(action.AtVec(0)) {
	case GridUp:
		row--
	case GridDown:
		row++
	case GridLeft:
		col--
	case GridRight:
		col++
	default:
		return nil, 0, false, fmt.Errorf("invalid action: %d", int(action.AtVec(0)))
	}

	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= g.cols {
		col = g.cols - 1
	}

	g.state = row*g.cols + col
	goal := g.rows*g.cols - 1
	if g.state == goal {
		return obsOf(g.state), 1, true, nil
	}
	return obsOf(g.state), 0, false, nil
}
