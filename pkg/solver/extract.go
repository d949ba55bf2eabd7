package solver

import (
	"fmt"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// extract reads a feasible assignment back into a grid. Black cells are
// copied through unchanged; each white cell takes the digit whose
// variable is set. A white cell with no digit set means the backend
// returned a malformed assignment, which the cell constraints make
// impossible for any genuinely feasible one.
func (enc *encoding) extract(a assignment) (puzzle.Grid, error) {
	var solved puzzle.Grid
	for i := 0; i < puzzle.NumCells; i++ {
		cell := enc.grid.CellAt(i)
		if cell.Color == puzzle.Black {
			solved.SetCellAt(i, cell)
			continue
		}
		digit := puzzle.Empty
		for _, v := range puzzle.Values(false) {
			if a[enc.x[i][v-1]] >= 0.5 {
				digit = v
				break
			}
		}
		if digit == puzzle.Empty {
			return puzzle.Grid{}, fmt.Errorf("unexpected internal error: solved cell %d has no digit", i)
		}
		solved.SetCellAt(i, puzzle.Cell{Color: puzzle.White, Value: digit})
	}
	return solved, nil
}
