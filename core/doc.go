// Package core provides the in-memory star map: a directed weighted graph
// whose vertices (planets) are keyed both by a stable integer id and by a
// unique display name.
//
// The Graph G = (V,E) keeps:
//
//   - adjacency: VertexID → ordered list of outgoing Edge values
//     (a sequence.Array per vertex, insertion order preserved)
//   - a registry owning both lookup directions (id → Planet, name → id);
//     it is the only writer of either map, so they cannot drift apart
//   - a monotonic id counter: ids start at 0, are never reused after
//     RemoveVertex, and are reset only by Clear
//
// Edges:
//
//	Edge{From, To, Data: EdgeData{Distance, RiskFactor}}
//	Cost = Distance × (1 + RiskFactor)
//
//	Parallel edges between the same ordered pair are allowed.
//	RemoveEdge and UpdateEdgeDistance touch only the first match.
//	UpdateEdgeDistance clamps the new distance to MinEdgeDistance (1.0).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(name string) (VertexID, error)   // O(1)
//	RemoveVertex(id VertexID) error            // O(V+E): strips incoming edges everywhere
//	RemoveVertexByName(name string) error
//	Clear()                                    // O(1): also resets the id counter
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID, data EdgeData) error      // O(1) amortized
//	AddEdgeByName(from, to string, data EdgeData) error
//	RemoveEdge(from, to VertexID) error                  // O(deg)
//	UpdateEdgeDistance(from, to VertexID, d float64) error
//
//	// Query
//	Edges(id) ([]Edge, error)   VertexIndex(name)   VertexName(id)
//	HasVertex(id)   HasPlanet(name)   Vertices()   Planets()
//	VertexCount()   EdgeCount()   Stats()   Clone()
//
// Errors:
//
//	ErrDuplicateName  – AddVertex with a name already in use
//	ErrEmptyName      – AddVertex with ""
//	ErrVertexNotFound – any operation on a missing id
//	ErrPlanetNotFound – any operation on a missing name (wraps ErrVertexNotFound)
//
// Concurrency: a Graph is single-threaded by contract. Nothing here locks;
// share a Graph across goroutines only under external synchronization.
// Mutations are not transactional, which is acceptable for a non-durable
// in-memory structure.
package core
