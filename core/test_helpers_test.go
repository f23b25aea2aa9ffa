// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for starlane/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Centralize the structural invariants every mutation test re-checks.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
)

// Common planet names used across core tests.
const (
	PlanetTerra   = "Terra"
	PlanetMars    = "Mars"
	PlanetJupiter = "Jupiter"
	PlanetSaturn  = "Saturn"
	PlanetMissing = "Nowhere"

	PlanetAlphaCentauri = "Alpha Centauri"
)

// Common edge payloads (avoid magic numbers in test bodies).
var (
	Lane10   = core.EdgeData{Distance: 10, RiskFactor: 0}
	Lane100  = core.EdgeData{Distance: 100, RiskFactor: 0.2}
	Lane200  = core.EdgeData{Distance: 200, RiskFactor: 0.1}
	LaneRisk = core.EdgeData{Distance: 50, RiskFactor: 0.3}
)

// missingID is an id no fixture ever allocates.
const missingID core.VertexID = 999

// MustAddPlanets registers names in order and returns their ids.
func MustAddPlanets(t *testing.T, g *core.Graph, names ...string) []core.VertexID {
	t.Helper()
	ids := make([]core.VertexID, len(names))
	for i, name := range names {
		id, err := g.AddVertex(name)
		require.NoError(t, err, "AddVertex(%q)", name)
		ids[i] = id
	}

	return ids
}

// MustEdges returns the outgoing edges of id, failing the test on error.
func MustEdges(t *testing.T, g *core.Graph, id core.VertexID) []core.Edge {
	t.Helper()
	edges, err := g.Edges(id)
	require.NoError(t, err, "Edges(%d)", id)

	return edges
}

// RequireConsistent VERIFIES the structural invariants of g:
//   - name ↔ id resolution agrees in both directions for every vertex;
//   - VertexCount matches the number of ids;
//   - every edge's From is its owning vertex and every To is a live vertex.
func RequireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	ids := g.Vertices()
	require.Len(t, ids, g.VertexCount(), "VertexCount vs Vertices()")

	names := g.Planets()
	require.Len(t, names, len(ids), "Planets() size")

	for _, id := range ids {
		name, err := g.VertexName(id)
		require.NoError(t, err)
		require.Equal(t, names[id], name)

		back, err := g.VertexIndex(name)
		require.NoError(t, err)
		require.Equal(t, id, back, "name %q resolves to a different id", name)

		for _, e := range MustEdges(t, g, id) {
			require.Equal(t, id, e.From, "edge owner mismatch")
			require.True(t, g.HasVertex(e.To), "dangling edge %d→%d", e.From, e.To)
		}
	}
}
