// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Planet, Edge, EdgeData and Graph declarations, sentinel errors, constructor.
// Policy:
//   - Vertex ids come from a monotonic counter and are never reused until Clear.
//   - Name ↔ id lookups live in one registry; nothing else writes them.
//   - Edges are directed; parallel edges between the same pair are allowed.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/starlane/sequence"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateName indicates AddVertex was called with an already indexed name.
	ErrDuplicateName = errors.New("core: planet name already exists")

	// ErrEmptyName indicates AddVertex was called with an empty name.
	ErrEmptyName = errors.New("core: planet name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex id.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrPlanetNotFound indicates an operation referenced a non-existent planet name.
	// It wraps ErrVertexNotFound, so errors.Is(err, ErrVertexNotFound) holds for both.
	ErrPlanetNotFound = fmt.Errorf("core: planet not found: %w", ErrVertexNotFound)
)

// MinEdgeDistance is the floor applied by UpdateEdgeDistance.
const MinEdgeDistance = 1.0

// initialVertexID is the first id handed out after construction or Clear.
const initialVertexID VertexID = 0

// VertexID is the stable integer identity of a planet.
type VertexID int

// Planet is the metadata stored per vertex.
type Planet struct {
	// ID is the vertex id assigned by AddVertex.
	ID VertexID

	// Name is the unique display name.
	Name string

	// HasArtifact is a gameplay flag; the routing engine never reads it.
	HasArtifact bool
}

// EdgeData carries the weight components of a directed lane.
//
// Distance has no floor at creation time and RiskFactor is not validated;
// the intended risk range is [0,1].
type EdgeData struct {
	Distance   float64
	RiskFactor float64
}

// Cost returns the effective traversal cost Distance × (1 + RiskFactor).
func (d EdgeData) Cost() float64 {
	return d.Distance * (1.0 + d.RiskFactor)
}

// Edge is a directed connection From → To.
type Edge struct {
	From VertexID
	To   VertexID
	Data EdgeData
}

// edgeList is the outgoing edge storage of one vertex.
type edgeList = sequence.Array[Edge]

// Graph is a directed weighted star map.
//
// adjacency maps every live vertex id to its outgoing edge list; the key set of
// adjacency always equals the id set of the registry. Graph is not safe for
// concurrent use; callers that share one across goroutines must synchronize.
type Graph struct {
	// Storage
	adjacency map[VertexID]*edgeList // owner id → outgoing edges
	planets   *registry              // id ↔ name, planet metadata

	// Counters
	nextID      VertexID // next id to hand out; only Clear lowers it
	vertexCount int      // live vertices
}

// NewGraph creates an empty Graph whose first vertex id will be 0.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[VertexID]*edgeList),
		planets:   newRegistry(),
		nextID:    initialVertexID,
	}
}
