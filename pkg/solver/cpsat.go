package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

type cpsatSolver struct {
	timeLimit time.Duration
}

// CPSATOption configures the CP-SAT backend.
type CPSATOption func(*cpsatSolver)

// WithTimeLimit bounds the time CP-SAT may spend on one puzzle. A
// search cut off by the limit reports a StatusError rather than
// ErrNoSolution.
func WithTimeLimit(d time.Duration) CPSATOption {
	return func(s *cpsatSolver) {
		s.timeLimit = d
	}
}

// NewCPSATSolver returns a Solver backed by the OR-Tools CP-SAT
// solver. The model's variables and linear constraints map one to one
// onto the proto builder, and the context's cancellation and deadline
// interrupt the underlying search.
func NewCPSATSolver(options ...CPSATOption) Solver {
	s := &cpsatSolver{}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *cpsatSolver) Solve(ctx context.Context, g puzzle.Grid) (puzzle.Grid, error) {
	enc, err := encode(g)
	if err != nil {
		return puzzle.Grid{}, err
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Grid{}, err
	}
	a, err := s.solveCP(ctx, &enc.model)
	if err != nil {
		return puzzle.Grid{}, err
	}
	return enc.extract(a)
}

// buildCpModel maps a model onto the CP-SAT proto builder and returns
// the built proto along with the variable handles, indexed like the
// model's variables.
func buildCpModel(m *model) (*cmpb.CpModelProto, []cpmodel.IntVar, error) {
	builder := cpmodel.NewCpModelBuilder()
	vars := make([]cpmodel.IntVar, len(m.variables))
	for i, v := range m.variables {
		vars[i] = builder.NewIntVar(v.lower, v.upper).WithName(v.label)
	}
	for _, lc := range m.constraints {
		expr := cpmodel.NewLinearExpr()
		for _, t := range lc.terms {
			expr.AddTerm(vars[t.v], t.coeff)
		}
		builder.AddLinearConstraint(expr, lc.lower, lc.upper)
	}

	cpm, err := builder.Model()
	if err != nil {
		return nil, nil, fmt.Errorf("unexpected internal error: building model: %w", err)
	}
	return cpm, vars, nil
}

func (s *cpsatSolver) solveCP(ctx context.Context, m *model) (assignment, error) {
	cpm, vars, err := buildCpModel(m)
	if err != nil {
		return nil, err
	}

	res, err := cpmodel.SolveCpModelInterruptibleWithParameters(cpm, s.parameters(ctx), ctx.Done())
	if err != nil {
		return nil, fmt.Errorf("solving model: %w", err)
	}

	switch res.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE:
		a := make(assignment, len(vars))
		for i, v := range vars {
			a[i] = float64(cpmodel.SolutionIntegerValue(res, v))
		}
		return a, nil
	case cmpb.CpSolverStatus_INFEASIBLE:
		return nil, ErrNoSolution
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, &StatusError{Status: res.GetStatus().String()}
}

func (s *cpsatSolver) parameters(ctx context.Context) *sppb.SatParameters {
	limit := s.timeLimit
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); limit == 0 || remaining < limit {
			limit = remaining
		}
	}
	if limit <= 0 {
		return nil
	}
	return &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(limit.Seconds()),
	}
}
