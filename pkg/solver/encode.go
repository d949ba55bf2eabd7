package solver

import (
	"fmt"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// DuplicateClueError reports two black cells fixing the same digit in
// one row or column. Such a puzzle is self-contradictory input, so the
// encoder rejects it before any solve attempt is made.
type DuplicateClueError struct {
	Axis  string // "row" or "column"
	Index int
	Digit puzzle.Value
}

func (e *DuplicateClueError) Error() string {
	return fmt.Sprintf("duplicate black clue %d in %s %d", e.Digit.Int(), e.Axis, e.Index)
}

// encoding bridges a grid and the solver model: the assembled model
// plus the variable handles needed to read a solution back out.
type encoding struct {
	grid         puzzle.Grid
	compartments []puzzle.Compartment
	model        model

	// x[i][k-1] is "white cell i holds digit k"; only white cell
	// indices are present.
	x map[int][]int
	// y[c][k-1] is "compartment c's minimum value is k".
	y [][]int
}

// encode builds the model for a grid: an x variable per white cell and
// digit with clue-pinned bounds, a y variable per compartment and
// candidate minimum, and the row, column and compartment constraints
// over them. There is no objective; any feasible assignment is a valid
// completion.
func encode(g puzzle.Grid) (*encoding, error) {
	enc := &encoding{
		grid:         g,
		compartments: g.Compartments(),
		x:            map[int][]int{},
	}

	enc.addCellVariables()
	enc.addCompartmentVariables()
	enc.addCellConstraints()
	if err := enc.addAxisConstraints("row"); err != nil {
		return nil, err
	}
	if err := enc.addAxisConstraints("column"); err != nil {
		return nil, err
	}
	enc.addCompartmentConstraints()
	return enc, nil
}

func (enc *encoding) addCellVariables() {
	for i := 0; i < puzzle.NumCells; i++ {
		cell := enc.grid.CellAt(i)
		if cell.Color != puzzle.White {
			continue
		}
		vars := make([]int, 0, 9)
		for _, v := range puzzle.Values(false) {
			var lower, upper int64
			switch {
			case cell.Value == puzzle.Empty:
				lower, upper = 0, 1
			case cell.Value == v:
				// the clue digit is forced on
				lower, upper = 1, 1
			default:
				// every other digit is forced off
				lower, upper = 0, 0
			}
			vars = append(vars, enc.model.addVariable(fmt.Sprintf("x_%d_%d", i, v.Int()), lower, upper))
		}
		enc.x[i] = vars
	}
}

func (enc *encoding) addCompartmentVariables() {
	for c, compartment := range enc.compartments {
		vars := make([]int, 0, 9)
		for _, v := range puzzle.Values(false) {
			// a straight of the compartment's length starting at v
			// must stay within 1..9; impossible starts keep their
			// variable, pinned off, so the index space stays dense
			upper := int64(1)
			if len(compartment) > 9-v.Int()+1 {
				upper = 0
			}
			vars = append(vars, enc.model.addVariable(fmt.Sprintf("y_%d_%d", c, v.Int()), 0, upper))
		}
		enc.y = append(enc.y, vars)
	}
}

// Each white cell holds exactly one digit.
func (enc *encoding) addCellConstraints() {
	for i := 0; i < puzzle.NumCells; i++ {
		vars, ok := enc.x[i]
		if !ok {
			continue
		}
		terms := make([]term, 0, len(vars))
		for _, v := range vars {
			terms = append(terms, term{v: v, coeff: 1})
		}
		enc.model.addConstraint(fmt.Sprintf("cell %d holds exactly one digit", i), terms, 1, 1)
	}
}

// Each digit appears at most once among an axis line's white cells, and
// a digit fixed on a black cell excludes that digit from every white
// cell of the line.
func (enc *encoding) addAxisConstraints(axis string) error {
	at := func(line, offset int) int {
		if axis == "row" {
			return puzzle.Index(line, offset)
		}
		return puzzle.Index(offset, line)
	}

	for line := 0; line < puzzle.Size; line++ {
		for _, v := range puzzle.Values(false) {
			var terms []term
			for offset := 0; offset < puzzle.Size; offset++ {
				if vars, ok := enc.x[at(line, offset)]; ok {
					terms = append(terms, term{v: vars[v-1], coeff: 1})
				}
			}
			enc.model.addConstraint(fmt.Sprintf("digit %d appears at most once in %s %d", v.Int(), axis, line), terms, noLower, 1)
		}

		seen := map[puzzle.Value]bool{}
		for offset := 0; offset < puzzle.Size; offset++ {
			cell := enc.grid.CellAt(at(line, offset))
			if cell.Color != puzzle.Black || cell.Value == puzzle.Empty {
				continue
			}
			if seen[cell.Value] {
				return &DuplicateClueError{Axis: axis, Index: line, Digit: cell.Value}
			}
			seen[cell.Value] = true

			for excluded := 0; excluded < puzzle.Size; excluded++ {
				i := at(line, excluded)
				if vars, ok := enc.x[i]; ok {
					enc.model.addConstraint(
						fmt.Sprintf("%s %d black clue %d excludes cell %d", axis, line, cell.Value.Int(), i),
						[]term{{v: vars[cell.Value-1], coeff: 1}},
						noLower, 0)
				}
			}
		}
	}
	return nil
}

// Each compartment has exactly one minimum value, and choosing minimum
// k obliges every digit of the straight k..k+L-1 to appear among the
// compartment's cells.
func (enc *encoding) addCompartmentConstraints() {
	for c, compartment := range enc.compartments {
		vars := enc.y[c]
		terms := make([]term, 0, len(vars))
		for _, v := range vars {
			terms = append(terms, term{v: v, coeff: 1})
		}
		enc.model.addConstraint(fmt.Sprintf("compartment %d has exactly one minimum", c), terms, 1, 1)

		length := len(compartment)
		for _, v := range puzzle.Values(false) {
			k := v.Int()
			if length > 9-k+1 {
				// once the straight no longer fits, no later
				// minimum fits either
				break
			}
			for digit := k; digit < k+length; digit++ {
				terms := make([]term, 0, length+1)
				for _, i := range compartment {
					terms = append(terms, term{v: enc.x[i][digit-1], coeff: 1})
				}
				terms = append(terms, term{v: vars[k-1], coeff: -1})
				enc.model.addConstraint(
					fmt.Sprintf("compartment %d starting at %d contains %d", c, k, digit),
					terms, 0, noUpper)
			}
		}
	}
}
