// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and the Result of a reachability walk.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/sequence"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the walk never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures the walk via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when Reachable is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a planet is visited, with its hop count from
	// the start. Returning an error aborts the walk.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// FilterEdge skips lanes for which it returns false.
	FilterEdge func(e core.Edge) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.VertexID, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; an error from it stops the walk.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips lanes for which fn returns false, e.g. to ignore
// lanes above a risk threshold.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMaxRisk ignores lanes whose RiskFactor exceeds limit.
func WithMaxRisk(limit float64) Option {
	return WithFilterEdge(func(e core.Edge) bool { return e.Data.RiskFactor <= limit })
}

// Result holds the outcome of a walk:
//   - Order: planets in visit sequence (start first).
//   - Depth: hop count from the start for every reached planet.
//   - Parent: BFS-tree predecessor for every reached planet except the start.
type Result struct {
	Start  core.VertexID
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.VertexID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns the fewest-hops route from the start to dest.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := sequence.NewWithCapacity[core.VertexID](r.Depth[dest] + 1)
	for cur := dest; ; {
		path.Prepend(cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	return path.Values(), nil
}
