package solver

import "math"

// The model types mirror the capability expected from an external
// engine: binary variables created with explicit bounds and a label,
// and linear constraints over (variable, coefficient) pairs bounded
// below and above.

// variable is a binary decision variable. Bounds are inclusive; clue
// fixing pins lower and upper to the same value at creation time.
type variable struct {
	label string
	lower int64
	upper int64
}

// term is a single (variable, coefficient) pair of a linear constraint.
// The variable is referenced by its index in the model.
type term struct {
	v     int
	coeff int64
}

// Open bound markers for one-sided linear constraints.
const (
	noLower = math.MinInt64
	noUpper = math.MaxInt64
)

// linearConstraint requires lower <= sum(coeff*value) <= upper.
type linearConstraint struct {
	label string
	terms []term
	lower int64
	upper int64
}

// model is the complete variable and constraint set for one solve
// attempt. It is rebuilt from a grid snapshot on every call and never
// persisted or shared between calls.
type model struct {
	variables   []variable
	constraints []linearConstraint
}

func (m *model) addVariable(label string, lower, upper int64) int {
	m.variables = append(m.variables, variable{label: label, lower: lower, upper: upper})
	return len(m.variables) - 1
}

func (m *model) addConstraint(label string, terms []term, lower, upper int64) {
	m.constraints = append(m.constraints, linearConstraint{
		label: label,
		terms: terms,
		lower: lower,
		upper: upper,
	})
}

// An assignment holds the value reported for every variable of a
// feasible model, indexed by variable index. Backends report 0 or 1,
// but consumers tolerate floating point slack.
type assignment []float64
