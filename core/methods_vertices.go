// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle (add, cascading remove, clear) and vertex lookups.
// Policy:
//   - Every id handed out by AddVertex is fresh; ids of removed vertices stay retired.
//   - RemoveVertex strips incoming edges from every other list before returning.
//   - Lookups by id fail with ErrVertexNotFound, lookups by name with ErrPlanetNotFound.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/starlane/sequence"
)

// AddVertex creates a planet named name and returns its fresh id.
//
// Implementation:
//   - Stage 1: Reject empty names (ErrEmptyName) and indexed names (ErrDuplicateName).
//   - Stage 2: Take the next counter value, register the planet, open an empty edge list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (VertexID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if g.planets.hasName(name) {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := g.nextID
	g.nextID++
	g.planets.put(id, name)
	g.adjacency[id] = sequence.New[Edge]()
	g.vertexCount++

	return id, nil
}

// RemoveVertex deletes vertex id, its outgoing list, and every edge pointing at it.
//
// Implementation:
//   - Stage 1: Validate presence (ErrVertexNotFound).
//   - Stage 2: Drop the vertex's own outgoing list.
//   - Stage 3: Filter every remaining list, removing edges with To == id.
//   - Stage 4: Drop the registry entry and decrement the live count.
//
// The id counter is untouched, so id is never handed out again before Clear.
// The cascade is not transactional; it cannot fail halfway in practice.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id VertexID) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	delete(g.adjacency, id)
	for _, edges := range g.adjacency {
		edges.Filter(func(e Edge) bool { return e.To != id })
	}
	g.planets.drop(id)
	g.vertexCount--

	return nil
}

// RemoveVertexByName resolves name and removes that vertex.
func (g *Graph) RemoveVertexByName(name string) error {
	id, err := g.VertexIndex(name)
	if err != nil {
		return err
	}

	return g.RemoveVertex(id)
}

// HasVertex reports whether id is a live vertex. O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasPlanet reports whether a vertex named name exists. O(1).
func (g *Graph) HasPlanet(name string) bool {
	return g.planets.hasName(name)
}

// VertexIndex resolves a planet name to its id.
func (g *Graph) VertexIndex(name string) (VertexID, error) {
	id, ok := g.planets.idOf(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPlanetNotFound, name)
	}

	return id, nil
}

// VertexName resolves an id to its planet name.
func (g *Graph) VertexName(id VertexID) (string, error) {
	name, ok := g.planets.nameOf(id)
	if !ok {
		return "", fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return name, nil
}

// Planet returns a copy of the metadata of vertex id.
func (g *Graph) Planet(id VertexID) (Planet, error) {
	p, ok := g.planets.planet(id)
	if !ok {
		return Planet{}, fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return p, nil
}

// SetArtifact sets the gameplay artifact flag of vertex id.
func (g *Graph) SetArtifact(id VertexID, has bool) error {
	if !g.planets.setArtifact(id, has) {
		return fmt.Errorf("%w: id=%d", ErrVertexNotFound, id)
	}

	return nil
}

// HasArtifact reports the artifact flag of vertex id; unknown ids report false.
func (g *Graph) HasArtifact(id VertexID) bool {
	p, ok := g.planets.planet(id)
	return ok && p.HasArtifact
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// Vertices returns all live vertex ids in ascending order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Planets returns an id → name snapshot of every live vertex.
// Complexity: O(V)
func (g *Graph) Planets() map[VertexID]string {
	return g.planets.names()
}

// Clear wipes every vertex and edge and resets the id counter, so the next
// AddVertex returns 0 again.
func (g *Graph) Clear() {
	g.adjacency = make(map[VertexID]*edgeList)
	g.planets.reset()
	g.vertexCount = 0
	g.nextID = initialVertexID
}
