// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Result value, Options and functional options for Finder.

package dijkstra

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/starlane/core"
)

// Result is the answer to a point-to-point query.
//
// PathExists – true iff the target is reachable from the source.
// TotalCost  – sum of edge costs along Path; +Inf when PathExists is false.
// Path       – vertex ids from source to target inclusive; empty when absent.
// PathNames  – planet names parallel to Path.
type Result struct {
	PathExists bool
	TotalCost  float64
	Path       []core.VertexID
	PathNames  []string
}

// NoPath returns the negative result: no path, infinite cost, empty sequences.
func NoPath() Result {
	return Result{
		PathExists: false,
		TotalCost:  math.Inf(1),
		Path:       []core.VertexID{},
		PathNames:  []string{},
	}
}

// Hops returns the number of edges on the path (0 when absent or source == target).
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders "A → B → C (cost 20.00)" or "no path".
func (r Result) String() string {
	if !r.PathExists {
		return "no path"
	}

	return fmt.Sprintf("%s (cost %.2f)", strings.Join(r.PathNames, " → "), r.TotalCost)
}

// Options configures a Finder.
//
// Logger – receives one debug record per solver run (pops, stale discards, pushes).
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options that log through slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}
