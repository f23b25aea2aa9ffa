// Package dfs provides depth-first traversal and loop detection over the
// directed lanes of a core.Graph.
//
// What:
//
//   - Walk(g, start, opts...) explores lanes depth-first, recording finish
//     order, tree depth and parent links. WithFullTraversal covers every
//     planet as a forest.
//   - DetectCycles(g) finds loops, i.e. lane sequences that return to their
//     starting planet. Each loop is rotated so the smallest id leads.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked on every planet entry.
//   - WithOnVisit(fn)         pre-order hook; an error aborts the walk.
//   - WithOnExit(fn)          post-order hook; an error aborts the walk.
//   - WithMaxDepth(limit)     stop descending below limit (0 = start only).
//   - WithFilterEdge(fn)      skip lanes; counted in Result.SkippedLanes.
//   - WithFullTraversal()     restart from every unvisited planet.
//
// Complexity:
//
//   - Walk:          O(V + E) time, O(V) memory.
//   - DetectCycles:  O(V + E + C·L) time for C loops of length L.
//
// Both are recursive; recursion depth is bounded by the planet count.
package dfs
