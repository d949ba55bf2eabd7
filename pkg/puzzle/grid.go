// Package puzzle models a Str8ts board: a 9x9 grid of white cells to be
// filled with digits and black wall cells that may carry excluding
// digits, plus the compartment segmentation derived from it.
package puzzle

import "fmt"

// Size is the edge length of a grid.
const Size = 9

// NumCells is the total number of cells in a grid.
const NumCells = Size * Size

// Color classifies a cell. White cells are solved for; Black cells are
// fixed walls whose optional digit only excludes that digit from the
// cell's row and column.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Cell pairs a color with a value. A Black cell's value is immutable
// input; a White cell's non-Empty input value is a clue any solution
// must reproduce exactly.
type Cell struct {
	Color Color
	Value Value
}

func (c Cell) String() string {
	return fmt.Sprintf("%s(%s)", c.Color, c.Value)
}

// Grid is a 9x9 board of cells in row-major order. The zero value is an
// all-White, all-Empty grid. Grid is a plain value type; assignment
// copies the whole board.
type Grid struct {
	cells [NumCells]Cell
}

// Index converts (row, col) coordinates to a flat cell index.
func Index(row, col int) int {
	return row*Size + col
}

// RowCol converts a flat cell index back to (row, col) coordinates.
func RowCol(index int) (row, col int) {
	return index / Size, index % Size
}

// Cell returns the cell at (row, col).
func (g Grid) Cell(row, col int) Cell {
	return g.cells[Index(row, col)]
}

// CellAt returns the cell at a flat index.
func (g Grid) CellAt(index int) Cell {
	return g.cells[index]
}

// SetCell replaces the cell at (row, col).
func (g *Grid) SetCell(row, col int, c Cell) {
	g.cells[Index(row, col)] = c
}

// SetCellAt replaces the cell at a flat index.
func (g *Grid) SetCellAt(index int, c Cell) {
	g.cells[index] = c
}

// SetColor sets the color of the cell at (row, col), keeping its value.
func (g *Grid) SetColor(row, col int, c Color) {
	g.cells[Index(row, col)].Color = c
}

// SetValue sets the value of the cell at (row, col), keeping its color.
func (g *Grid) SetValue(row, col int, v Value) {
	g.cells[Index(row, col)].Value = v
}

// ToggleColor flips the cell at (row, col) between White and Black,
// keeping its value.
func (g *Grid) ToggleColor(row, col int) {
	i := Index(row, col)
	if g.cells[i].Color == White {
		g.cells[i].Color = Black
	} else {
		g.cells[i].Color = White
	}
}

// Clear resets every cell to White and Empty.
func (g *Grid) Clear() {
	g.cells = [NumCells]Cell{}
}

// ClearValues empties every cell's value and keeps its color.
func (g *Grid) ClearValues() {
	for i := range g.cells {
		g.cells[i].Value = Empty
	}
}
