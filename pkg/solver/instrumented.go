package solver

import (
	"context"
	"time"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// InstrumentedSolver wraps a Solver and reports the duration of every
// solve to one of two emitters. Any error counts as a failure,
// including the no-solution outcome.
type InstrumentedSolver struct {
	solver                Solver
	successMetricsEmitter func(time.Duration)
	failureMetricsEmitter func(time.Duration)
}

var _ Solver = &InstrumentedSolver{}

func NewInstrumentedSolver(solver Solver, successMetricsEmitter, failureMetricsEmitter func(time.Duration)) *InstrumentedSolver {
	return &InstrumentedSolver{
		solver:                solver,
		successMetricsEmitter: successMetricsEmitter,
		failureMetricsEmitter: failureMetricsEmitter,
	}
}

func (is *InstrumentedSolver) Solve(ctx context.Context, g puzzle.Grid) (puzzle.Grid, error) {
	start := time.Now()
	solved, err := is.solver.Solve(ctx, g)
	if err != nil {
		is.failureMetricsEmitter(time.Now().Sub(start))
	} else {
		is.successMetricsEmitter(time.Now().Sub(start))
	}
	return solved, err
}
