// Package starlane is a route planner for directed star maps: planets joined
// by one-way hyperspace lanes, each lane carrying a distance and a risk.
//
// 🚀 What is starlane?
//
//	An in-memory routing engine plus the tooling around it:
//		• Core map: planets with unique names, directed lanes, parallel lanes allowed
//		• Cheapest routes: Dijkstra over Distance × (1 + Risk)
//		• Reachability: BFS (fewest jumps) and DFS (walks, loop detection)
//		• Generators: random, path, cycle, star and complete maps
//		• Files: plain-text [PLANETS]/[EDGES] format and Graphviz DOT export
//		• Comparison: name-keyed snapshots, fingerprints and diffs
//		• Benchmarks: timed queries on random maps of growing size
//
// Packages:
//
//	core/         Graph, Planet, Edge, EdgeData; name ↔ id registry
//	dijkstra/     cheapest risk-weighted route and single-source costs
//	bfs/          reachability by jump count with depth and risk limits
//	dfs/          depth-first walks and lane loop detection
//	builder/      deterministic and random map constructors
//	graphfile/    text load/save and DOT rendering
//	snapshot/     content fingerprint and map diff
//	analytics/    performance runs and table/JSON/YAML reports
//	config/       starlane.yaml loading
//	pqueue/       min-priority queue used by dijkstra
//	sequence/     growable array backing lane lists, queues and paths
//
// Quick example:
//
//	Terra ──100, risk 0.2──▶ Mars ──100, risk 0.2──▶ Jupiter
//	  └──────────────200, risk 0.5──────────────────▶┘
//
//	The detour costs 240 against 300 for the direct lane, so the route is
//	Terra → Mars → Jupiter.
//
// The starlane command (cmd/starlane) exposes all of the above:
//
//	go install github.com/katalvlaran/starlane/cmd/starlane@latest
//	starlane route galaxy.txt Terra Jupiter
package starlane
