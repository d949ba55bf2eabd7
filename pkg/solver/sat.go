package solver

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// litMapping performs translation between the variables and linear
// constraints of a model and the literals and clauses that appear in
// the SAT formula.
type litMapping struct {
	c     *logic.C
	lits  []z.Lit
	conss []z.Lit
	// labels maps each assumed circuit node back to the label of the
	// constraint it came from. Structure sharing in the circuit can
	// hand back one node for several constraints; the first label
	// wins.
	labels map[z.Lit]string
}

// newLitMapping returns a new litMapping for the provided model. Every
// variable gets an input literal, and variables pinned by their bounds
// become unit constraints alongside the translated linear constraints.
// All constraints are circuit nodes to be assumed at solve time so
// that an unsatisfiable core can be mapped back to labels.
func newLitMapping(m *model) *litMapping {
	d := &litMapping{
		c:      logic.NewCCap(len(m.variables)),
		lits:   make([]z.Lit, len(m.variables)),
		labels: make(map[z.Lit]string, len(m.constraints)),
	}

	for i := range d.lits {
		d.lits[i] = d.c.Lit()
	}
	for i, v := range m.variables {
		if v.lower >= 1 {
			d.addConstraint(d.lits[i], fmt.Sprintf("%s is pinned on", v.label))
		}
		if v.upper <= 0 {
			d.addConstraint(d.lits[i].Not(), fmt.Sprintf("%s is pinned off", v.label))
		}
	}
	for _, lc := range m.constraints {
		d.addConstraint(d.translate(lc), lc.label)
	}
	return d
}

func (d *litMapping) addConstraint(m z.Lit, label string) {
	d.conss = append(d.conss, m)
	if _, ok := d.labels[m]; !ok {
		d.labels[m] = label
	}
}

// translate reduces a linear constraint over binary variables to a
// single circuit node that holds exactly when the constraint does. A
// term with coefficient -1 contributes the complemented literal and
// raises both bounds by one, leaving a cardinality bound over plain
// literals.
func (d *litMapping) translate(lc linearConstraint) z.Lit {
	ms := make([]z.Lit, 0, len(lc.terms))
	lower, upper := lc.lower, lc.upper
	for _, t := range lc.terms {
		switch t.coeff {
		case 1:
			ms = append(ms, d.lits[t.v])
		case -1:
			ms = append(ms, d.lits[t.v].Not())
			if lower != noLower {
				lower++
			}
			if upper != noUpper {
				upper++
			}
		default:
			panic(fmt.Sprintf("unsupported coefficient %d", t.coeff))
		}
	}

	lo, hi := 0, len(ms)
	if lower != noLower && int(lower) > lo {
		lo = int(lower)
	}
	if upper != noUpper && int(upper) < hi {
		hi = int(upper)
	}
	if lo > len(ms) || hi < 0 || lo > hi {
		return d.c.F
	}

	var nodes []z.Lit
	switch {
	case lo == 1:
		nodes = append(nodes, d.c.Ors(ms...))
	case lo > 1:
		nodes = append(nodes, d.c.CardSort(ms).Geq(lo))
	}
	switch {
	case hi == 0:
		off := make([]z.Lit, len(ms))
		for i, m := range ms {
			off[i] = m.Not()
		}
		nodes = append(nodes, d.c.Ands(off...))
	case hi < len(ms):
		nodes = append(nodes, d.c.CardSort(ms).Leq(hi))
	}

	switch len(nodes) {
	case 0:
		return d.c.T
	case 1:
		return nodes[0]
	}
	return d.c.Ands(nodes...)
}

// AddConstraints adds the constraints encoded in the embedded circuit
// to the solver g.
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

func (d *litMapping) AssumeConstraints(g inter.S) {
	for _, m := range d.conss {
		g.Assume(m)
	}
}

// Conflicts returns the labels of a minimized set of assumed
// constraints sufficient to make a solution impossible.
func (d *litMapping) Conflicts(g inter.Assumable) []string {
	whys := g.Why(nil)
	labels := make([]string, 0, len(whys))
	for _, why := range whys {
		if label, ok := d.labels[why]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func solveSAT(m *model) (assignment, error) {
	d := newLitMapping(m)
	g := gini.New()
	d.AddConstraints(g)
	d.AssumeConstraints(g)
	switch g.Solve() {
	case satisfiable:
		a := make(assignment, len(d.lits))
		for i, lit := range d.lits {
			if g.Value(lit) {
				a[i] = 1
			}
		}
		return a, nil
	case unsatisfiable:
		return nil, ConflictError(d.Conflicts(g))
	}
	return nil, &StatusError{Status: "unknown"}
}

type satSolver struct{}

// NewSATSolver returns a Solver backed by a CDCL SAT solver. The
// model's linear constraints reduce losslessly to clauses and sorting
// networks, and an unsolvable puzzle yields the labels of a minimized
// set of conflicting constraints.
func NewSATSolver() Solver {
	return satSolver{}
}

func (satSolver) Solve(ctx context.Context, g puzzle.Grid) (puzzle.Grid, error) {
	enc, err := encode(g)
	if err != nil {
		return puzzle.Grid{}, err
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Grid{}, err
	}
	a, err := solveSAT(&enc.model)
	if err != nil {
		return puzzle.Grid{}, err
	}
	return enc.extract(a)
}
