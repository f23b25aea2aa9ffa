// SPDX-License-Identifier: MIT
//
// File: analytics.go
// Role: Timed solver queries and the size-ladder benchmark runner.
// Policy:
//   - Cancellation is honoured between runs, never inside a solver call.
//   - A Runner executes one ladder at a time; overlapping calls fail fast.

package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/tevino/abool"

	"github.com/katalvlaran/starlane/builder"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dijkstra"
)

// Measure times one FindShortestPath(start, end) on g, including Finder
// construction, and reports the map size and the solver's answer.
func Measure(g *core.Graph, start, end core.VertexID) PerformanceResult {
	var res PerformanceResult
	if g != nil {
		res.GraphSize = g.VertexCount()
		res.EdgeCount = g.EdgeCount()
	}

	began := time.Now()
	path := dijkstra.NewFinder(g).FindShortestPath(start, end)
	res.Elapsed = time.Since(began)

	res.PathFound = path.PathExists
	res.PathCost = path.TotalCost

	return res
}

// Runner benchmarks the solver on random maps of increasing size.
type Runner struct {
	edgesMultiplier int
	runsPerSize     int
	rng             *rand.Rand
	logger          *slog.Logger

	running abool.AtomicBool
	err     error
}

// NewRunner returns a Runner with DefaultEdgesMultiplier, DefaultRunsPerSize,
// a time-seeded RNG and slog.Default().
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		edgesMultiplier: DefaultEdgesMultiplier,
		runsPerSize:     DefaultRunsPerSize,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunPerformanceTests generates RunsPerSize random maps per entry of sizes,
// each with size*EdgesMultiplier lanes, times one query between random
// endpoints per map, and returns one averaged result per size.
//
// A size whose runs all measured zero elapsed time yields no entry. On
// cancellation the results gathered so far are returned with ctx.Err().
func (r *Runner) RunPerformanceTests(ctx context.Context, sizes []int) ([]PerformanceResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: graph size %d", ErrInvalidParameter, size)
		}
	}
	if !r.running.SetToIf(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer r.running.UnSet()

	r.logger.Info("analytics: starting performance tests",
		"sizes", sizes, "edges_multiplier", r.edgesMultiplier, "runs_per_size", r.runsPerSize)

	results := make([]PerformanceResult, 0, len(sizes))
	for _, size := range sizes {
		bucket, err := r.runSize(ctx, size)
		if err != nil {
			return results, err
		}
		if bucket.Runs == 0 {
			r.logger.Warn("analytics: no timed runs", "size", size)
			continue
		}
		results = append(results, bucket)
		r.logger.Info("analytics: size done",
			"size", size, "avg", bucket.Elapsed, "paths_found", bucket.PathsFound)
	}
	r.logger.Info("analytics: performance tests finished", "buckets", len(results))

	return results, nil
}

// runSize averages RunsPerSize measurements on fresh random maps.
func (r *Runner) runSize(ctx context.Context, size int) (PerformanceResult, error) {
	edges := size * r.edgesMultiplier
	bucket := PerformanceResult{GraphSize: size, EdgeCount: edges}
	r.logger.Debug("analytics: testing size", "size", size, "edges", edges)

	var total time.Duration
	var costSum float64
	for run := 0; run < r.runsPerSize; run++ {
		if err := ctx.Err(); err != nil {
			return bucket, err
		}

		g, err := builder.RandomStarMap(size, edges, builder.WithRand(r.rng))
		if err != nil {
			return bucket, fmt.Errorf("analytics: generate size %d: %w", size, err)
		}
		// RandomStarMap allocates ids 0..size-1 on a fresh graph.
		start := core.VertexID(r.rng.Intn(size))
		end := core.VertexID(r.rng.Intn(size))

		m := Measure(g, start, end)
		if m.Elapsed <= 0 {
			continue
		}
		total += m.Elapsed
		bucket.Runs++
		if m.PathFound {
			bucket.PathsFound++
			costSum += m.PathCost
		}
	}

	if bucket.Runs > 0 {
		bucket.Elapsed = total / time.Duration(bucket.Runs)
	}
	if bucket.PathsFound > 0 {
		bucket.PathFound = true
		bucket.PathCost = costSum / float64(bucket.PathsFound)
	}

	return bucket, nil
}

func (r *Runner) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}
