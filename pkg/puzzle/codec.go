package puzzle

import (
	"fmt"
	"strings"
)

// Grids are written as nine lines of nine runes each: '.' (or '0') is a
// white empty cell, '1'..'9' a white clue, '#' a black empty cell and
// 'a'..'i' a black cell fixing digit 1..9.

func parseCell(r rune) (Cell, error) {
	switch {
	case r == '.' || r == '0':
		return Cell{}, nil
	case r >= '1' && r <= '9':
		return Cell{Color: White, Value: Value(r - '0')}, nil
	case r == '#':
		return Cell{Color: Black}, nil
	case r >= 'a' && r <= 'i':
		return Cell{Color: Black, Value: Value(r - 'a' + 1)}, nil
	}
	return Cell{}, fmt.Errorf("invalid cell %q", r)
}

func cellRune(c Cell) rune {
	switch {
	case c.Color == Black && c.Value == Empty:
		return '#'
	case c.Color == Black:
		return 'a' + rune(c.Value) - 1
	case c.Value == Empty:
		return '.'
	}
	return '0' + rune(c.Value)
}

// Parse reads a grid from its nine-line rune form. Blank lines and
// whitespace between runes are ignored.
func Parse(s string) (Grid, error) {
	var g Grid
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row == Size {
			return Grid{}, fmt.Errorf("too many rows, expected %d", Size)
		}
		runes := []rune(line)
		if len(runes) != Size {
			return Grid{}, fmt.Errorf("row %d: expected %d cells, got %d", row, Size, len(runes))
		}
		for col, r := range runes {
			cell, err := parseCell(r)
			if err != nil {
				return Grid{}, fmt.Errorf("row %d, col %d: %w", row, col, err)
			}
			g.SetCell(row, col, cell)
		}
		row++
	}
	if row != Size {
		return Grid{}, fmt.Errorf("expected %d rows, got %d", Size, row)
	}
	return g, nil
}

// String renders the grid in the same rune form accepted by Parse, one
// row per line.
func (g Grid) String() string {
	var b strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.WriteRune(cellRune(g.Cell(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns a boxed, human readable board for terminal output.
// Black cells are shown as ### or with their digit in brackets.
func (g Grid) Render() string {
	border := strings.Repeat("+---", Size) + "+\n"
	var b strings.Builder
	b.WriteString(border)
	for row := 0; row < Size; row++ {
		b.WriteByte('|')
		for col := 0; col < Size; col++ {
			c := g.Cell(row, col)
			switch {
			case c.Color == Black && c.Value == Empty:
				b.WriteString("###")
			case c.Color == Black:
				b.WriteString("[" + c.Value.String() + "]")
			case c.Value == Empty:
				b.WriteString(" . ")
			default:
				b.WriteString(" " + c.Value.String() + " ")
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		b.WriteString(border)
	}
	return b.String()
}
