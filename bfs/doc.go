// Package bfs answers "which planets can I reach, and in how many jumps?"
// with a breadth-first walk over a core.Graph.
//
// What
//
//   - Explore planets in non-decreasing hop count from a start planet,
//     following lanes in their stored direction only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: planet → hops from start
//   - Parent: planet → predecessor in the BFS tree
//   - Lane costs are ignored; use package dijkstra for cheapest routes.
//
// Determinism
//
//	Lanes are scanned in insertion order, so the visit sequence is fully
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Reachable(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithMaxRisk(0.25),
//	    bfs.WithOnVisit(func(id core.VertexID, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start planet does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped OnVisit errors.
package bfs
