package puzzle

// A Compartment is a maximal run of contiguous White cells within one
// row or one column, stored as flat cell indices in scan order. Runs
// are bounded by Black cells and the grid edge; a lone White cell
// between two walls still forms a length-1 compartment.
type Compartment []int

// RowCompartments scans each row left to right and returns its
// compartments, indices ordered by increasing column.
func (g Grid) RowCompartments() []Compartment {
	var compartments []Compartment
	for row := 0; row < Size; row++ {
		var run Compartment
		for col := 0; col < Size; col++ {
			if g.Cell(row, col).Color == Black {
				if len(run) > 0 {
					compartments = append(compartments, run)
					run = nil
				}
				continue
			}
			run = append(run, Index(row, col))
		}
		if len(run) > 0 {
			compartments = append(compartments, run)
		}
	}
	return compartments
}

// ColumnCompartments scans each column top to bottom and returns its
// compartments, indices ordered by increasing row.
func (g Grid) ColumnCompartments() []Compartment {
	var compartments []Compartment
	for col := 0; col < Size; col++ {
		var run Compartment
		for row := 0; row < Size; row++ {
			if g.Cell(row, col).Color == Black {
				if len(run) > 0 {
					compartments = append(compartments, run)
					run = nil
				}
				continue
			}
			run = append(run, Index(row, col))
		}
		if len(run) > 0 {
			compartments = append(compartments, run)
		}
	}
	return compartments
}

// Compartments returns all row compartments followed by all column
// compartments. Every White cell appears in exactly one compartment of
// each axis.
func (g Grid) Compartments() []Compartment {
	compartments := g.RowCompartments()
	return append(compartments, g.ColumnCompartments()...)
}
