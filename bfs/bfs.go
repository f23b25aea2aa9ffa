// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Reachable entry point and the walker (enqueue / loop / visit).
// Policy:
//   - Lanes are followed in their stored direction only.
//   - Cancellation is checked once per dequeued planet.

package bfs

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/sequence"
)

// queueItem pairs a planet with its hop count.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   *sequence.Array[queueItem] // FIFO; head advances, storage is never shifted
	head    int
	visited mapset.Set[core.VertexID]
	res     *Result
}

// Reachable walks g breadth-first from start over outgoing lanes.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for bad
// input, ctx.Err() on cancellation, or a wrapped OnVisit error. On abort the
// partial Result is returned alongside the error.
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable(g *core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   sequence.NewWithCapacity[queueItem](n),
		visited: mapset.NewThreadUnsafeSet[core.VertexID](),
		res: &Result{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// ReachableByName resolves start and delegates to Reachable.
func ReachableByName(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	id, err := g.VertexIndex(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	return Reachable(g, id, opts...)
}

// enqueue marks id visited at depth d and appends it to the FIFO.
func (w *walker) enqueue(id core.VertexID, d int) {
	w.visited.Add(id)
	w.res.Depth[id] = d
	w.queue.Append(queueItem{id: id, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < w.queue.Size() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, _ := w.queue.Get(w.head)
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the planet in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies the edge filter and MaxDepth, then enqueues
// every unseen lane target.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	edges, err := w.graph.Edges(item.id)
	if err != nil {
		return
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) || w.visited.Contains(e.To) {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, nextDepth)
	}
}
