// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Loop detection over directed lanes via three-colour DFS back edges.
// Policy:
//   - Every loop is reported in canonical form: rotated so the smallest id
//     comes first, closed by repeating it.
//   - Self-lanes are loops of length one: [v, v].
//   - Parallel lanes closing the same loop are reported once.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/starlane/core"
)

// DetectCycles reports the loops closed by back edges of a depth-first
// forest over g. Every strongly connected region with at least one lane
// inside contributes at least one loop, so has == false means every route
// visits each planet at most once. It is not an enumeration of all simple
// cycles.
//
// A nil graph is cycle-free.
//
// Complexity: O(V + E + C·L) time (C loops of average length L).
func DetectCycles(g *core.Graph) (bool, [][]core.VertexID, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Visitation state
	verts := g.Vertices()
	d := &cycleDetector{
		g:     g,
		state: make(map[core.VertexID]int, len(verts)),
		path:  make([]core.VertexID, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch from every white planet
	for _, v := range verts {
		if d.state[v] == White {
			d.visit(v)
		}
	}

	// 4) Deterministic output
	sort.Slice(d.cycles, func(i, j int) bool {
		return Compare(d.cycles[i], d.cycles[j]) < 0
	})

	return len(d.cycles) > 0, d.cycles, nil
}

type cycleDetector struct {
	g      *core.Graph
	state  map[core.VertexID]int
	path   []core.VertexID
	seen   map[string]struct{}
	cycles [][]core.VertexID
}

func (d *cycleDetector) visit(id core.VertexID) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	edges, _ := d.g.Edges(id)
	for _, e := range edges {
		switch d.state[e.To] {
		case White:
			d.visit(e.To)
		case Gray:
			d.record(e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record closes the loop from start to the top of the path stack.
func (d *cycleDetector) record(start core.VertexID) {
	idx := IndexOf(d.path, start)
	closed := canonical(d.path[idx:])
	sig := fmt.Sprint(closed)
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}

// canonical rotates the open loop to its minimal rotation and closes it.
func canonical(open []core.VertexID) []core.VertexID {
	rot := MinimalRotation(open)

	return append(rot, rot[0])
}
