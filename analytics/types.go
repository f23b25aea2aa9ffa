// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: PerformanceResult, Runner options and sentinel errors.

package analytics

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Sentinel errors for benchmark runs.
var (
	// ErrInvalidParameter reports a non-positive size, multiplier or run count.
	ErrInvalidParameter = errors.New("analytics: invalid parameter")

	// ErrAlreadyRunning is returned when RunPerformanceTests is re-entered
	// on a Runner that has not finished its previous run.
	ErrAlreadyRunning = errors.New("analytics: runner is busy")
)

// Defaults match the classic benchmark: 3 lanes per planet, 5 maps per size.
const (
	DefaultEdgesMultiplier = 3
	DefaultRunsPerSize     = 5
)

// DefaultSizes is the size ladder used when none is configured.
var DefaultSizes = []int{10, 50, 100, 500, 1000}

// PerformanceResult records one timed query, or the average over a size bucket.
//
// For a single Measure call, PathCost is the solver's TotalCost (+Inf when
// no path exists). For an averaged bucket, Elapsed is the mean over timed
// runs, PathCost is the mean over runs that found a path, and Runs and
// PathsFound are populated.
type PerformanceResult struct {
	GraphSize  int           `json:"graph_size"`
	EdgeCount  int           `json:"edge_count"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	PathFound  bool          `json:"path_found"`
	PathCost   float64       `json:"path_cost"`
	Runs       int           `json:"runs,omitempty"`
	PathsFound int           `json:"paths_found,omitempty"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithEdgesMultiplier sets lanes per planet for generated maps.
func WithEdgesMultiplier(m int) Option {
	return func(r *Runner) {
		if m < 1 {
			r.setErr(fmt.Errorf("%w: edges multiplier %d", ErrInvalidParameter, m))
			return
		}
		r.edgesMultiplier = m
	}
}

// WithRunsPerSize sets how many random maps are timed per size.
func WithRunsPerSize(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			r.setErr(fmt.Errorf("%w: runs per size %d", ErrInvalidParameter, n))
			return
		}
		r.runsPerSize = n
	}
}

// WithSeed makes map generation and endpoint choice reproducible.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
