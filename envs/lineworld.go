package envs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	LineLeft = iota
	LineRight

	lineNumActions
)

// LineWorld is a corridor of length cells. The agent starts in the middle;
// both ends are terminal, only the right end pays reward 1.
type LineWorld struct {
	length int
	state  int
}

var _ Environment = &LineWorld{}

func NewLineWorld(length int) *LineWorld {
	return &LineWorld{
		length: length,
	}
}

func (l *LineWorld) States() int {
	return l.length
}

func (l *LineWorld) Actions() int {
	return lineNumActions
}

func (l *LineWorld) Reset() (*mat.VecDense, error) {
	l.state = l.length / 2
	return obsOf(l.state), nil
}

func (l *LineWorld) Step(action *mat.VecDense) (*mat.VecDense, float64, bool, error) {
	switch int(action.AtVec(0)) {
	case LineLeft:
		l.state--
	case LineRight:
		l.state++
	default:
		return nil, 0, false, fmt.Errorf("invalid action: %d", int(action.AtVec(0)))
	}

	if l.state <= 0 {
		l.state = 0
		return obsOf(l.state), 0, true, nil
	}
	if l.state >= l.length-1 {
		l.state = l.length - 1
		return obsOf(l.state), 1, true, nil
	}
	return obsOf(l.state), 0, false, nil
}
