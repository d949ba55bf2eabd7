package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

// diagonalSolved is a fully solved board: cell (r,c) is black when
// (r+c)%9 == 8 and otherwise holds ((r+c)%9)+1, so every compartment
// carries consecutive digits by construction.
const diagonalSolved = `12345678#
2345678#1
345678#12
45678#123
5678#1234
678#12345
78#123456
8#1234567
#12345678
`

func TestZeroGrid(t *testing.T) {
	var g Grid
	for i := 0; i < NumCells; i++ {
		assert.Equal(t, Cell{Color: White, Value: Empty}, g.CellAt(i))
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			r, c := RowCol(Index(row, col))
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}
}

func TestCellAccessors(t *testing.T) {
	var g Grid
	g.SetCell(2, 3, Cell{Color: Black, Value: Five})
	assert.Equal(t, Cell{Color: Black, Value: Five}, g.Cell(2, 3))
	assert.Equal(t, Cell{Color: Black, Value: Five}, g.CellAt(Index(2, 3)))

	g.SetCellAt(Index(8, 8), Cell{Color: White, Value: Nine})
	assert.Equal(t, Cell{Color: White, Value: Nine}, g.Cell(8, 8))

	g.SetColor(0, 0, Black)
	g.SetValue(0, 0, Two)
	assert.Equal(t, Cell{Color: Black, Value: Two}, g.Cell(0, 0))
}

func TestToggleColorKeepsValue(t *testing.T) {
	var g Grid
	g.SetCell(4, 4, Cell{Color: White, Value: Seven})

	g.ToggleColor(4, 4)
	assert.Equal(t, Cell{Color: Black, Value: Seven}, g.Cell(4, 4))

	g.ToggleColor(4, 4)
	assert.Equal(t, Cell{Color: White, Value: Seven}, g.Cell(4, 4))
}

func TestClear(t *testing.T) {
	g := mustParse(t, diagonalSolved)
	g.Clear()
	assert.Equal(t, Grid{}, g)
}

func TestClearValues(t *testing.T) {
	g := mustParse(t, diagonalSolved)
	g.ClearValues()
	for i := 0; i < NumCells; i++ {
		row, col := RowCol(i)
		assert.Equal(t, Empty, g.CellAt(i).Value)
		if (row+col)%9 == 8 {
			assert.Equal(t, Black, g.CellAt(i).Color)
		} else {
			assert.Equal(t, White, g.CellAt(i).Color)
		}
	}
}

func TestGridIsValueType(t *testing.T) {
	g := mustParse(t, diagonalSolved)
	h := g
	h.SetValue(0, 0, Nine)
	assert.Equal(t, One, g.Cell(0, 0).Value)
	assert.Equal(t, Nine, h.Cell(0, 0).Value)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "White(5)", Cell{Color: White, Value: Five}.String())
	assert.Equal(t, "Black( )", Cell{Color: Black, Value: Empty}.String())
}

func TestDiagonalSolvedShape(t *testing.T) {
	g := mustParse(t, diagonalSolved)
	blacks := 0
	for i := 0; i < NumCells; i++ {
		if g.CellAt(i).Color == Black {
			blacks++
			assert.Equal(t, Empty, g.CellAt(i).Value)
		} else {
			assert.NotEqual(t, Empty, g.CellAt(i).Value)
		}
	}
	assert.Equal(t, Size, blacks)
	assert.Equal(t, diagonalSolved, g.String())
}
