// Package inspect implements the str8ts inspect subcommand.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// NewCmd returns the inspect subcommand.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <puzzle-file>",
		Short: "Show a puzzle's compartments and clues",
		Long: `Inspect parses a puzzle file and prints the grid along with its row
and column compartments and its black clues. Pass '-' to read the puzzle
from standard input.

        $ str8ts inspect puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	grid, err := readPuzzle(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, grid.Render())
	fmt.Fprintln(out)

	rows := grid.RowCompartments()
	fmt.Fprintf(out, "%d row compartments:\n", len(rows))
	for _, c := range rows {
		row, first := puzzle.RowCol(c[0])
		_, last := puzzle.RowCol(c[len(c)-1])
		fmt.Fprintf(out, "  row %d, columns %d-%d, length %d\n", row, first, last, len(c))
	}

	cols := grid.ColumnCompartments()
	fmt.Fprintf(out, "%d column compartments:\n", len(cols))
	for _, c := range cols {
		first, col := puzzle.RowCol(c[0])
		last, _ := puzzle.RowCol(c[len(c)-1])
		fmt.Fprintf(out, "  column %d, rows %d-%d, length %d\n", col, first, last, len(c))
	}

	var clues []string
	for i := 0; i < puzzle.NumCells; i++ {
		cell := grid.CellAt(i)
		if cell.Color == puzzle.Black && cell.Value != puzzle.Empty {
			row, col := puzzle.RowCol(i)
			clues = append(clues, fmt.Sprintf("  row %d, column %d excludes %d", row, col, cell.Value.Int()))
		}
	}
	if len(clues) > 0 {
		fmt.Fprintf(out, "%d black clues:\n", len(clues))
		for _, clue := range clues {
			fmt.Fprintln(out, clue)
		}
	}

	return nil
}

func readPuzzle(path string) (puzzle.Grid, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return puzzle.Grid{}, errors.Wrap(err, "reading puzzle")
	}

	grid, err := puzzle.Parse(string(data))
	if err != nil {
		return puzzle.Grid{}, errors.Wrap(err, "parsing puzzle")
	}
	return grid, nil
}
