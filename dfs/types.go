// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Colours, sentinel errors, options and the Result of a depth-first walk.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/starlane/core"
)

// Visitation colours.
const (
	White = iota // not visited yet
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk or DetectLoops.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start planet does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a Walk.
type Option func(*Options)

// Options holds hooks and limits for one walk.
type Options struct {
	// Ctx allows cancellation; checked on every planet entry.
	Ctx context.Context

	// OnVisit runs on discovery (pre-order). An error aborts the walk.
	OnVisit func(id core.VertexID, depth int) error

	// OnExit runs after all descendants are explored (post-order).
	OnExit func(id core.VertexID) error

	// MaxDepth, if non-negative, limits recursion; 0 visits only the start.
	MaxDepth int

	// FilterEdge skips lanes for which it returns false.
	FilterEdge func(e core.Edge) bool

	// FullTraversal restarts from every unvisited planet in id order.
	FullTraversal bool
}

// DefaultOptions: background context, no hooks, no depth limit, single source.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id core.VertexID) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterEdge skips lanes for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// WithFullTraversal covers every planet, not only those reachable from start.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures a depth-first walk.
type Result struct {
	// Order lists planets in finish (post-order) sequence.
	Order []core.VertexID

	// Depth maps each discovered planet to its tree depth.
	Depth map[core.VertexID]int

	// Parent maps each non-root planet to its discoverer.
	Parent map[core.VertexID]core.VertexID

	// SkippedLanes counts lanes rejected by FilterEdge.
	SkippedLanes int
}

// Visited reports whether id was discovered.
func (r *Result) Visited(id core.VertexID) bool {
	_, ok := r.Depth[id]
	return ok
}
