// Package solve implements the str8ts solve subcommand.
package solve

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/puzzle-framework/str8ts/pkg/lib/filemonitor"
	"github.com/puzzle-framework/str8ts/pkg/lib/server"
	"github.com/puzzle-framework/str8ts/pkg/lib/signals"
	"github.com/puzzle-framework/str8ts/pkg/metrics"
	"github.com/puzzle-framework/str8ts/pkg/puzzle"
	"github.com/puzzle-framework/str8ts/pkg/solver"
)

const (
	backendSAT   = "sat"
	backendCPSAT = "cpsat"
)

type options struct {
	backend     string
	timeout     time.Duration
	watch       bool
	metricsAddr string
}

// NewCmd returns the solve subcommand.
func NewCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>...",
		Short: "Solve Str8ts puzzles",
		Long: `Solve reads one or more puzzle files and prints each solved grid.

A puzzle file holds nine lines of nine characters, one per cell. '1' to
'9' is a white cell holding that digit, '.' is an empty white cell, '#'
is a black cell, and 'a' to 'i' is a black cell excluding the digit 1 to
9 from its row and column. Pass '-' to read a puzzle from standard input.

        $ str8ts solve puzzle.txt

With --watch, a single puzzle file is re-solved every time it changes.

The exit status is 0 when every puzzle is solved, 2 when some puzzle has
no solution, and 1 on any other failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&o.backend, "backend", "b", backendSAT, "solver backend, one of 'sat' or 'cpsat'")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "maximum time to spend solving one puzzle")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "re-solve a single puzzle file whenever it changes")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. ':8080'")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	s, err := o.newSolver()
	if err != nil {
		return err
	}

	if o.metricsAddr != "" {
		debug, _ := cmd.Flags().GetBool("debug")
		listenAndServe := server.GetListenAndServeFunc(
			server.WithAddress(o.metricsAddr),
			server.WithLogger(log.StandardLogger()),
			server.WithDebug(debug),
		)
		go func() {
			if err := listenAndServe(); err != nil {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
	}

	if o.watch {
		if len(args) != 1 {
			return errors.New("--watch requires exactly one puzzle file")
		}
		return o.watchAndSolve(cmd, s, args[0])
	}

	return o.solveFiles(cmd, s, args)
}

// newSolver builds the configured backend wrapped with the solve
// duration emitters.
func (o *options) newSolver() (solver.Solver, error) {
	var s solver.Solver
	switch o.backend {
	case backendSAT:
		s = solver.NewSATSolver()
	case backendCPSAT:
		var opts []solver.CPSATOption
		if o.timeout > 0 {
			opts = append(opts, solver.WithTimeLimit(o.timeout))
		}
		s = solver.NewCPSATSolver(opts...)
	default:
		return nil, errors.Errorf("unknown backend %q", o.backend)
	}
	return solver.NewInstrumentedSolver(s, metrics.RegisterSolveSuccess, metrics.RegisterSolveFailure), nil
}

type outcome struct {
	solved puzzle.Grid
	err    error
}

func (o *options) solveFiles(cmd *cobra.Command, s solver.Solver, paths []string) error {
	outcomes := make([]outcome, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			grid, err := readPuzzle(path)
			if err == nil {
				grid, err = o.solveOne(cmd.Context(), s, grid)
			}
			outcomes[i] = outcome{solved: grid, err: err}
			return err
		})
	}
	// outcomes carries every result, not just the first error
	_ = g.Wait()

	var unsolvable, failed int
	for i, out := range outcomes {
		if len(paths) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", paths[i])
		}
		switch {
		case out.err == nil:
			fmt.Fprint(cmd.OutOrStdout(), out.solved.Render())
		case errors.Is(out.err, solver.ErrNoSolution):
			unsolvable++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", paths[i], solver.ErrNoSolution)
			logConflicts(out.err)
		default:
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", paths[i], out.err)
		}
	}

	switch {
	case failed > 0:
		return errors.Errorf("failed to solve %d of %d puzzles", failed, len(paths))
	case unsolvable > 0:
		return errors.Wrapf(solver.ErrNoSolution, "%d of %d puzzles", unsolvable, len(paths))
	}
	return nil
}

func (o *options) watchAndSolve(cmd *cobra.Command, s solver.Solver, path string) error {
	if path == "-" {
		return errors.New("--watch requires a puzzle file, not standard input")
	}

	ctx := signals.Context()

	resolve := func(grid puzzle.Grid) {
		solved, err := o.solveOne(ctx, s, grid)
		switch {
		case err == nil:
			fmt.Fprint(cmd.OutOrStdout(), solved.Render())
		case errors.Is(err, solver.ErrNoSolution):
			log.Info(solver.ErrNoSolution.Error())
			logConflicts(err)
		default:
			log.WithError(err).Error("solve failed")
		}
	}

	w, err := filemonitor.NewPuzzleWatcher(log.StandardLogger(), path, resolve)
	if err != nil {
		return err
	}

	resolve(w.Grid())
	w.Run(ctx)
	<-ctx.Done()
	return nil
}

func (o *options) solveOne(ctx context.Context, s solver.Solver, grid puzzle.Grid) (puzzle.Grid, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	return s.Solve(ctx, grid)
}

// logConflicts reports the conflicting constraint labels carried by an
// unsatisfiable outcome at debug level.
func logConflicts(err error) {
	var conflicts solver.ConflictError
	if errors.As(err, &conflicts) {
		for _, label := range conflicts {
			log.Debugf("conflict: %v", label)
		}
	}
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
	metrics.RegisterPuzzleRead()
	return grid, nil
}
