// Package metrics exposes Prometheus metrics for solve attempts.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Outcome   = "outcome"
	Succeeded = "succeeded"
	Failed    = "failed"
)

var (
	solveSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "str8ts_solve_duration_seconds",
			Help:       "The duration of a puzzle solve attempt",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome},
	)

	puzzlesRead = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "str8ts_puzzles_read_total",
			Help: "Number of puzzle files read",
		},
	)
)

var registerOnce sync.Once

// RegisterSolver registers the solver collectors with the default
// registry. Safe to call more than once.
func RegisterSolver() {
	registerOnce.Do(func() {
		prometheus.MustRegister(solveSummary)
		prometheus.MustRegister(puzzlesRead)
	})
}

func RegisterSolveSuccess(duration time.Duration) {
	solveSummary.WithLabelValues(Succeeded).Observe(duration.Seconds())
}

func RegisterSolveFailure(duration time.Duration) {
	solveSummary.WithLabelValues(Failed).Observe(duration.Seconds())
}

func RegisterPuzzleRead() {
	puzzlesRead.Inc()
}
