package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/str8ts/cmd/str8ts/solve"
	"github.com/puzzle-framework/str8ts/pkg/puzzle"
	"github.com/puzzle-framework/str8ts/pkg/solver"
)

const sparsePuzzle = `1.......#
.3.....#.
..5...#..
...7.#...
....#1...
...#.2...
..#...4..
.#.....6.
#.......8
`

const cluedPuzzle = `1.......i
.3.....i.
..5...i..
...7.i...
....i1...
...i.2...
..i...4..
.i.....6.
i.......8
`

const solvedPuzzle = `12345678#
2345678#1
345678#12
45678#123
5678#1234
678#12345
78#123456
8#1234567
#12345678
`

const contradiction = `55.......
.........
.........
.........
.........
.........
.........
.........
.........
`

func mustParse(s string) puzzle.Grid {
	g, err := puzzle.Parse(s)
	Expect(err).ToNot(HaveOccurred())
	return g
}

// expectValidSolution checks that solved is a legal completion of
// original: colors and clues preserved, every white cell filled, rows
// and columns free of repeats and of digits excluded by black clues,
// and every compartment holding consecutive digits.
func expectValidSolution(original, solved puzzle.Grid) {
	for i := 0; i < puzzle.NumCells; i++ {
		in, out := original.CellAt(i), solved.CellAt(i)
		Expect(out.Color).To(Equal(in.Color), "cell %d changed color", i)
		if in.Color == puzzle.Black {
			Expect(out.Value).To(Equal(in.Value), "black cell %d changed value", i)
			continue
		}
		Expect(out.Value).ToNot(Equal(puzzle.Empty), "white cell %d left empty", i)
		if in.Value != puzzle.Empty {
			Expect(out.Value).To(Equal(in.Value), "clue at cell %d not preserved", i)
		}
	}

	for line := 0; line < puzzle.Size; line++ {
		for _, axis := range []string{"row", "column"} {
			seen := map[puzzle.Value]bool{}
			excluded := map[puzzle.Value]bool{}
			for offset := 0; offset < puzzle.Size; offset++ {
				i := puzzle.Index(line, offset)
				if axis == "column" {
					i = puzzle.Index(offset, line)
				}
				cell := solved.CellAt(i)
				if cell.Color == puzzle.Black {
					if cell.Value != puzzle.Empty {
						excluded[cell.Value] = true
					}
					continue
				}
				Expect(seen[cell.Value]).To(BeFalse(), "%s %d repeats %v", axis, line, cell.Value)
				seen[cell.Value] = true
			}
			for digit := range excluded {
				Expect(seen[digit]).To(BeFalse(), "%s %d uses excluded %v", axis, line, digit)
			}
		}
	}

	for _, compartment := range solved.Compartments() {
		min, max := puzzle.Nine, puzzle.One
		for _, i := range compartment {
			v := solved.CellAt(i).Value
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		Expect(max.Int()-min.Int()+1).To(Equal(len(compartment)), "compartment %v is not a straight", compartment)
	}
}

var _ = Describe("Solving a puzzle", func() {
	It("completes a sparse puzzle", func() {
		grid := mustParse(sparsePuzzle)
		solved, err := solver.Solve(context.Background(), grid)
		Expect(err).ToNot(HaveOccurred())
		expectValidSolution(grid, solved)
	})

	It("respects black clue exclusions", func() {
		grid := mustParse(cluedPuzzle)
		solved, err := solver.Solve(context.Background(), grid)
		Expect(err).ToNot(HaveOccurred())
		expectValidSolution(grid, solved)
	})

	It("returns a solved grid unchanged", func() {
		grid := mustParse(solvedPuzzle)
		solved, err := solver.Solve(context.Background(), grid)
		Expect(err).ToNot(HaveOccurred())
		Expect(solved).To(Equal(grid))
	})

	It("reports contradictory clues as unsolvable", func() {
		grid := mustParse(contradiction)
		_, err := solver.Solve(context.Background(), grid)
		Expect(err).To(MatchError(solver.ErrNoSolution))
	})

	It("rejects duplicate black clues before solving", func() {
		grid := mustParse(strings.Replace(cluedPuzzle, ".3.....i.", "i3.....i.", 1))
		_, err := solver.Solve(context.Background(), grid)
		var dup *solver.DuplicateClueError
		Expect(errors.As(err, &dup)).To(BeTrue())
		Expect(err).ToNot(MatchError(solver.ErrNoSolution))
	})

	It("completes a sparse puzzle with the cpsat backend", func() {
		grid := mustParse(sparsePuzzle)
		solved, err := solver.NewCPSATSolver().Solve(context.Background(), grid)
		Expect(err).ToNot(HaveOccurred())
		expectValidSolution(grid, solved)
	})
})

var _ = Describe("The solve command", func() {
	It("prints a completed grid for a puzzle file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "puzzle.txt")
		Expect(os.WriteFile(path, []byte(sparsePuzzle), 0644)).To(Succeed())

		cmd := solve.NewCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{path})

		Expect(cmd.Execute()).To(Succeed())
		Expect(errOut.String()).To(BeEmpty())
		Expect(out.String()).ToNot(ContainSubstring(" . "))
		Expect(strings.Count(out.String(), "\n")).To(Equal(19))
	})
})
