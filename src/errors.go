package src

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLabel  = errors.New("unknown node label")
	ErrDuplicateEdge = errors.New("edge predicted twice")
	ErrSelfLoop      = errors.New("self-loop predicted while autoregulation is disabled")
	ErrNoPrediction  = errors.New("no prediction loaded")
	ErrNoTrueEdges   = errors.New("gold standard has no scorable edge")
	ErrTooFewNodes   = errors.New("gold standard needs at least two nodes")
)

// PredictionError is an input-integrity failure in a prediction list.
type PredictionError struct {
	File   string
	Line   int
	Source string
	Target string
	Err    error
}

func (e *PredictionError) Error() string {
	file := e.File
	if file == "" {
		file = "prediction"
	}
	return fmt.Sprintf("%s:%d: %s -> %s: %v", file, e.Line, e.Source, e.Target, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}
