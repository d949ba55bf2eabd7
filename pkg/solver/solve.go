// Package solver completes Str8ts puzzles. A grid is encoded as a
// model over binary variables, the model is handed to a backend, and a
// feasible assignment is read back out as a solved grid. Finding that
// no completion exists is an ordinary outcome, reported as
// ErrNoSolution.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// ErrNoSolution reports that a puzzle has no completion. Use errors.Is
// to detect it regardless of backend.
var ErrNoSolution = errors.New("puzzle has no solution")

// ConflictError is a no-solution outcome enriched with the labels of a
// minimal set of constraints sufficient to make completion impossible.
type ConflictError []string

func (e ConflictError) Error() string {
	const msg = "puzzle has no solution"
	if len(e) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(e, ", "))
}

func (e ConflictError) Is(target error) bool {
	return target == ErrNoSolution
}

// StatusError reports a backend that stopped without either finding a
// completion or proving none exists.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("solver finished with status %q", e.Status)
}

// Solver finds a completion of a Str8ts puzzle. Implementations return
// the solved grid, ErrNoSolution when the puzzle has none, or another
// error when the input is malformed or the backend fails.
type Solver interface {
	Solve(context.Context, puzzle.Grid) (puzzle.Grid, error)
}

// Solve completes a puzzle with the default backend.
func Solve(ctx context.Context, g puzzle.Grid) (puzzle.Grid, error) {
	return NewSATSolver().Solve(ctx, g)
}
