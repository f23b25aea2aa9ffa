// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Finder entry points and the lazy-deletion runner (init / process / relax).
// Policy:
//   - Unknown endpoints are a negative Result, never an error.
//   - Every improvement pushes a fresh heap entry; stale pops are discarded
//     through the finalized set.

package dijkstra

import (
	"context"
	"log/slog"
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/pqueue"
	"github.com/katalvlaran/starlane/sequence"
)

// Finder answers shortest-path queries against one graph.
//
// A Finder holds the graph by reference and caches nothing: every call is a
// fresh run. The graph must not be mutated while a call is in progress.
type Finder struct {
	g       *core.Graph
	options Options
}

// NewFinder binds a Finder to g.
func NewFinder(g *core.Graph, opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{g: g, options: cfg}
}

// FindShortestPath returns the cheapest path from start to end.
//
// Unknown endpoints yield NoPath() rather than an error. The search stops as
// soon as end is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
func (f *Finder) FindShortestPath(start, end core.VertexID) Result {
	// 1) Absent endpoints are a negative answer, not a failure.
	if f.g == nil || !f.g.HasVertex(start) || !f.g.HasVertex(end) {
		return NoPath()
	}

	// 2) Run with early termination at end.
	r := newRunner(f.g, start)
	r.target, r.stopAtTarget = end, true
	r.process()
	f.logRun("shortest path", r)

	// 3) Walk predecessors back from end.
	path := r.reconstruct(start, end)
	if len(path) == 0 {
		return NoPath()
	}

	// 4) Populate cost and the parallel name sequence.
	res := Result{
		PathExists: true,
		TotalCost:  r.dist[end],
		Path:       path,
		PathNames:  make([]string, len(path)),
	}
	for i, id := range path {
		// every id on the path was live when the run started
		res.PathNames[i], _ = f.g.VertexName(id)
	}

	return res
}

// FindShortestPathByName resolves both names and delegates to FindShortestPath.
// A name that does not resolve yields NoPath().
func (f *Finder) FindShortestPathByName(startName, endName string) Result {
	if f.g == nil {
		return NoPath()
	}
	start, err := f.g.VertexIndex(startName)
	if err != nil {
		return NoPath()
	}
	end, err := f.g.VertexIndex(endName)
	if err != nil {
		return NoPath()
	}

	return f.FindShortestPath(start, end)
}

// FindAllShortestPaths returns the shortest distance from start to every
// known vertex. Unreachable vertices map to +Inf. If start itself is absent,
// every vertex maps to +Inf.
//
// Complexity: O((V + E) log V), no early termination.
func (f *Finder) FindAllShortestPaths(start core.VertexID) map[core.VertexID]float64 {
	if f.g == nil {
		return map[core.VertexID]float64{}
	}
	if !f.g.HasVertex(start) {
		dist := make(map[core.VertexID]float64, f.g.VertexCount())
		for _, v := range f.g.Vertices() {
			dist[v] = math.Inf(1)
		}
		return dist
	}

	r := newRunner(f.g, start)
	r.process()
	f.logRun("all shortest paths", r)

	return r.dist
}

func (f *Finder) logRun(kind string, r *runner) {
	f.options.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dijkstra: run finished",
		slog.String("kind", kind),
		slog.Int("finalized", r.finalized.Cardinality()),
		slog.Int("pops", r.pops),
		slog.Int("stale", r.stale),
		slog.Int("pushes", r.pushes),
	)
}

// runner holds the mutable state for a single solver execution.
type runner struct {
	g            *core.Graph                           // The input graph; read-only here.
	target       core.VertexID                         // Early-exit vertex when stopAtTarget.
	stopAtTarget bool                                  // Point-to-point vs all-destinations.
	dist         map[core.VertexID]float64             // Tentative distance from the source.
	prev         map[core.VertexID]core.VertexID       // Predecessor on the best known path.
	finalized    mapset.Set[core.VertexID]             // Vertices whose distance is final.
	pq           *pqueue.Queue[core.VertexID, float64] // Lazy min-heap keyed by distance.

	pops, stale, pushes int // run diagnostics
}

// newRunner sets dist[v] = +Inf for all v, dist[start] = 0, and pushes (start, 0).
func newRunner(g *core.Graph, start core.VertexID) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:         g,
		dist:      make(map[core.VertexID]float64, len(vertices)),
		prev:      make(map[core.VertexID]core.VertexID),
		finalized: mapset.NewThreadUnsafeSet[core.VertexID](),
		pq:        pqueue.New[core.VertexID, float64](),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0
	r.push(start, 0)

	return r
}

// process pops the closest vertex until the heap empties or the target is finalized.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest-distance entry.
		u, _ := r.pq.Dequeue()
		r.pops++

		// 2) Stale duplicate of an already finalized vertex: discard.
		if r.finalized.Contains(u) {
			r.stale++
			continue
		}

		// 3) u's distance is now final.
		r.finalized.Add(u)
		if r.stopAtTarget && u == r.target {
			return
		}

		// 4) Relax all outgoing edges of u.
		r.relax(u)
	}
}

// relax tries to improve every neighbor reachable by one edge from u.
// An improvement always pushes a fresh entry; nothing is decreased in place.
func (r *runner) relax(u core.VertexID) {
	edges, err := r.g.Edges(u)
	if err != nil {
		// u came from the vertex snapshot; nothing to relax if it vanished
		return
	}
	for _, e := range edges {
		// Finalized distances never change; with negative lanes a late
		// improvement would otherwise loop the predecessor chain.
		if r.finalized.Contains(e.To) {
			continue
		}
		candidate := r.dist[u] + e.Data.Cost()
		if candidate < r.dist[e.To] {
			r.dist[e.To] = candidate
			r.prev[e.To] = u
			r.push(e.To, candidate)
		}
	}
}

func (r *runner) push(v core.VertexID, d float64) {
	r.pq.Enqueue(v, d)
	r.pushes++
}

// reconstruct walks prev from end to start, prepending each id.
// Returns an empty slice when end was never reached or the walk exceeds
// VertexCount steps.
func (r *runner) reconstruct(start, end core.VertexID) []core.VertexID {
	if _, ok := r.prev[end]; !ok && start != end {
		return []core.VertexID{}
	}

	limit := r.g.VertexCount()
	path := sequence.New[core.VertexID]()
	for cur := end; cur != start; {
		if path.Size() >= limit {
			return []core.VertexID{}
		}
		path.Prepend(cur)
		p, ok := r.prev[cur]
		if !ok {
			return []core.VertexID{}
		}
		cur = p
	}
	path.Prepend(start)

	return path.Values()
}
