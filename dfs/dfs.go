// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: Recursive depth-first Walk over outgoing lanes.
// Policy:
//   - Lanes are scanned in insertion order; forest roots in ascending id order.
//   - On a hook error Order is cleared and the error is wrapped.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// walker encapsulates state during a walk.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// Walk performs a depth-first traversal of g from start, or of every planet
// when WithFullTraversal is set (start is then ignored).
//
// Complexity: O(V + E) time, O(V) memory (recursion depth up to V).
func Walk(g *core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialise result with capacity hint
	n := g.VertexCount()
	w := &walker{graph: g, opts: o, res: &Result{
		Order:  make([]core.VertexID, 0, n),
		Depth:  make(map[core.VertexID]int, n),
		Parent: make(map[core.VertexID]core.VertexID, n),
	}}

	// 5. Traverse: forest or single tree
	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited(v) {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, recursing into unvisited lane targets.
func (w *walker) traverse(id core.VertexID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Discover
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 3. Explore lanes unless the depth limit is reached
	var edges []core.Edge
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, _ = w.graph.Edges(id)
	}
	for _, e := range edges {
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.res.SkippedLanes++
			continue
		}
		if w.res.Visited(e.To) {
			continue
		}
		w.res.Parent[e.To] = id
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	// 4. Finish
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
