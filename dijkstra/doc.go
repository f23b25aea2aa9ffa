// Package dijkstra answers cheapest-route queries over a core.Graph star map.
//
// Overview:
//
//   - Edge weight is risk-adjusted: Cost = Distance × (1 + RiskFactor).
//     A short but dangerous lane can lose to a longer, safer detour.
//   - Point-to-point queries stop as soon as the target is finalized;
//     all-destination queries run to exhaustion.
//   - All weights are positive (distances are clamped to ≥ 1.0 by core),
//     so the classic greedy expansion is exact.
//
// Algorithm outline:
//
//  1. dist[v] = +Inf for every vertex, dist[source] = 0, push (source, 0).
//  2. Pop the smallest entry u. If u is already finalized, the entry is
//     stale: discard it and continue.
//  3. Finalize u; stop if u is the target.
//  4. Relax u's out-edges to non-finalized v: whenever
//     dist[u] + cost(e) < dist[v], record prev[v] = u and push a NEW
//     entry (v, dist[v]).
//  5. Rebuild the path by walking prev from the target back to the source.
//
// Lazy deletion:
//
//	The underlying pqueue.Queue has no decrease-key. Duplicates of a vertex
//	with outdated distances accumulate in the heap and are filtered on pop
//	by the finalized set. The heap may therefore hold up to O(E) entries.
//
// Failure model:
//
//	The Finder never returns an error. Unknown ids, unresolvable names and
//	unreachable targets all produce NoPath(): PathExists=false,
//	TotalCost=+Inf, empty Path and PathNames.
//
//	Negative lanes are accepted by core but void optimality. Finalized
//	vertices are never revised, so a run still terminates with a valid
//	(possibly non-optimal) route.
//
// Complexity:
//
//	Time:  O((V + E) log V)
//	Space: O(V + E)
//
// Limitations:
//
//	Runs are not cancellable. A query against a very large graph holds the
//	calling goroutine until the heap drains or the target is finalized.
//
// Example:
//
//	f := dijkstra.NewFinder(g)
//	res := f.FindShortestPathByName("Terra", "Jupiter")
//	if res.PathExists {
//	    fmt.Println(res) // Terra → Mars → Jupiter (cost 240.00)
//	}
package dijkstra
