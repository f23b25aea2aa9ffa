// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Directed edge lifecycle (add, remove first match, update distance) and edge queries.
// Policy:
//   - Both endpoints are validated before any mutation.
//   - RemoveEdge and UpdateEdgeDistance act on the first matching edge only;
//     a missing edge is a silent no-op, not an error.

package core

import (
	"fmt"

	"github.com/katalvlaran/starlane/sequence"
)

// AddEdge appends a directed edge from → to carrying data.
// No duplicate check: parallel edges are kept as separate entries.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, data EdgeData) error {
	edges, err := g.outgoing(from, to)
	if err != nil {
		return err
	}
	edges.Append(Edge{From: from, To: to, Data: data})

	return nil
}

// AddEdgeByName resolves both names and appends the edge.
func (g *Graph) AddEdgeByName(fromName, toName string, data EdgeData) error {
	from, to, err := g.resolvePair(fromName, toName)
	if err != nil {
		return err
	}

	return g.AddEdge(from, to, data)
}

// RemoveEdge deletes the first edge from → to.
// Returns ErrVertexNotFound if either endpoint is absent; no matching edge is a no-op.
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to VertexID) error {
	edges, err := g.outgoing(from, to)
	if err != nil {
		return err
	}
	if i := firstEdgeTo(edges.Values(), to); i >= 0 {
		_ = edges.RemoveAt(i)
	}

	return nil
}

// RemoveEdgeByName resolves both names and removes the first matching edge.
func (g *Graph) RemoveEdgeByName(fromName, toName string) error {
	from, to, err := g.resolvePair(fromName, toName)
	if err != nil {
		return err
	}

	return g.RemoveEdge(from, to)
}

// UpdateEdgeDistance sets the distance of the first edge from → to.
// newDistance is clamped to MinEdgeDistance. No matching edge is a no-op.
// Complexity: O(deg(from)).
func (g *Graph) UpdateEdgeDistance(from, to VertexID, newDistance float64) error {
	edges, err := g.outgoing(from, to)
	if err != nil {
		return err
	}
	if newDistance < MinEdgeDistance {
		newDistance = MinEdgeDistance
	}
	if i := firstEdgeTo(edges.Values(), to); i >= 0 {
		e, _ := edges.At(i)
		e.Data.Distance = newDistance
	}

	return nil
}

// Edges returns a snapshot of the outgoing edges of id in insertion order.
// Mutating the returned slice does not affect the graph.
// Complexity: O(deg(id)).
func (g *Graph) Edges(id VertexID) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return edges.Values(), nil
}

// OutDegree returns the number of outgoing edges of id.
func (g *Graph) OutDegree(id VertexID) (int, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return edges.Size(), nil
}

// EdgeCount returns the total number of directed edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.adjacency {
		n += edges.Size()
	}

	return n
}

// Internal helper methods:
////////////////////

// outgoing validates both endpoints and returns from's edge list.
func (g *Graph) outgoing(from, to VertexID) (*edgeList, error) {
	edges, ok := g.adjacency[from]
	if !ok {
		return nil, fmt.Errorf("%w: source id=%d", ErrVertexNotFound, from)
	}
	if _, ok = g.adjacency[to]; !ok {
		return nil, fmt.Errorf("%w: destination id=%d", ErrVertexNotFound, to)
	}

	return edges, nil
}

// resolvePair maps two planet names to ids.
func (g *Graph) resolvePair(fromName, toName string) (VertexID, VertexID, error) {
	from, ok := g.planets.idOf(fromName)
	if !ok {
		return 0, 0, fmt.Errorf("%w: source %q", ErrPlanetNotFound, fromName)
	}
	to, ok := g.planets.idOf(toName)
	if !ok {
		return 0, 0, fmt.Errorf("%w: destination %q", ErrPlanetNotFound, toName)
	}

	return from, to, nil
}

// firstEdgeTo returns the index of the first edge targeting to, or -1.
func firstEdgeTo(edges []Edge, to VertexID) int {
	for i, e := range edges {
		if e.To == to {
			return i
		}
	}

	return -1
}

// edgeListOf copies edges into a fresh list.
func edgeListOf(edges []Edge) *edgeList {
	return sequence.FromSlice(edges)
}
