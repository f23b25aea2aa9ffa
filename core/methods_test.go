// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules (fresh ids, cascading removal, first-match edits).
//   - Validate sentinel error mapping for missing ids and names.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
)

// TestGraph_AddVertex VERIFIES id allocation, dual indexing and duplicate rejection.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: sequential ids from 0.
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars, PlanetJupiter)
	assert.Equal(t, []core.VertexID{0, 1, 2}, ids)
	assert.Equal(t, 3, g.VertexCount())

	// Stage 2: both lookup directions agree.
	id, err := g.VertexIndex(PlanetMars)
	require.NoError(t, err)
	assert.Equal(t, ids[1], id)
	name, err := g.VertexName(ids[2])
	require.NoError(t, err)
	assert.Equal(t, PlanetJupiter, name)

	// Stage 3: duplicate and empty names are rejected without side effects.
	_, err = g.AddVertex(PlanetTerra)
	assert.ErrorIs(t, err, core.ErrDuplicateName)
	_, err = g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyName)
	assert.Equal(t, 3, g.VertexCount())

	// Stage 4: names with internal spaces are ordinary names.
	ac, err := g.AddVertex(PlanetAlphaCentauri)
	require.NoError(t, err)
	assert.True(t, g.HasPlanet(PlanetAlphaCentauri))
	assert.Equal(t, core.VertexID(3), ac)

	RequireConsistent(t, g)
}

// TestGraph_IDsNeverReused VERIFIES the monotonic counter survives removals
// and is reset only by Clear.
func TestGraph_IDsNeverReused(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars)

	require.NoError(t, g.RemoveVertex(ids[1]))
	again, err := g.AddVertex(PlanetMars)
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(2), again, "removed id must stay retired")
	assert.False(t, g.HasVertex(ids[1]))

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	fresh, err := g.AddVertex(PlanetSaturn)
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(0), fresh, "Clear resets the counter")
}

// TestGraph_AddEdge VERIFIES endpoint validation and multi-edge acceptance.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars, PlanetJupiter)

	require.NoError(t, g.AddEdge(ids[0], ids[1], Lane100))
	require.NoError(t, g.AddEdge(ids[0], ids[2], Lane200))
	require.NoError(t, g.AddEdge(ids[0], ids[1], Lane10)) // parallel edge

	edges := MustEdges(t, g, ids[0])
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: ids[0], To: ids[1], Data: Lane100}, edges[0])
	assert.Equal(t, ids[2], edges[1].To)
	assert.Equal(t, Lane10, edges[2].Data)

	// Missing endpoints, either side.
	assert.ErrorIs(t, g.AddEdge(ids[0], missingID, Lane10), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(missingID, ids[0], Lane10), core.ErrVertexNotFound)
	assert.Len(t, MustEdges(t, g, ids[0]), 3)

	RequireConsistent(t, g)
}

func TestGraph_AddEdgeByName(t *testing.T) {
	g := core.NewGraph()
	MustAddPlanets(t, g, PlanetTerra, PlanetAlphaCentauri)

	require.NoError(t, g.AddEdgeByName(PlanetTerra, PlanetAlphaCentauri, LaneRisk))
	terra, _ := g.VertexIndex(PlanetTerra)
	assert.Len(t, MustEdges(t, g, terra), 1)

	err := g.AddEdgeByName(PlanetTerra, PlanetMissing, Lane10)
	assert.ErrorIs(t, err, core.ErrPlanetNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound, "planet sentinel wraps vertex sentinel")
	assert.ErrorIs(t, g.AddEdgeByName(PlanetMissing, PlanetTerra, Lane10), core.ErrPlanetNotFound)
}

// TestGraph_RemoveVertex_Cascade VERIFIES no edge references a removed vertex.
func TestGraph_RemoveVertex_Cascade(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars, PlanetJupiter, PlanetSaturn)
	terra, mars, jupiter, saturn := ids[0], ids[1], ids[2], ids[3]

	require.NoError(t, g.AddEdge(terra, mars, Lane10))
	require.NoError(t, g.AddEdge(terra, jupiter, Lane10))
	require.NoError(t, g.AddEdge(jupiter, mars, Lane10))
	require.NoError(t, g.AddEdge(jupiter, mars, Lane100))
	require.NoError(t, g.AddEdge(mars, saturn, Lane10))
	require.NoError(t, g.AddEdge(saturn, mars, Lane10))

	require.NoError(t, g.RemoveVertex(mars))

	assert.False(t, g.HasVertex(mars))
	assert.False(t, g.HasPlanet(PlanetMars))
	assert.Equal(t, 3, g.VertexCount())
	for _, id := range g.Vertices() {
		for _, e := range MustEdges(t, g, id) {
			assert.NotEqual(t, mars, e.To, "edge %d→%d survived", e.From, e.To)
		}
	}
	assert.Len(t, MustEdges(t, g, terra), 1)
	assert.Len(t, MustEdges(t, g, jupiter), 0)
	assert.Len(t, MustEdges(t, g, saturn), 0)

	_, err := g.Edges(mars)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(mars), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertexByName(PlanetMars), core.ErrPlanetNotFound)

	RequireConsistent(t, g)
}

// TestGraph_RemoveEdge_FirstMatch VERIFIES that only the first parallel edge goes
// and that a missing edge is a silent no-op.
func TestGraph_RemoveEdge_FirstMatch(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars, PlanetJupiter)
	terra, mars, jupiter := ids[0], ids[1], ids[2]

	require.NoError(t, g.AddEdge(terra, mars, Lane10))
	require.NoError(t, g.AddEdge(terra, jupiter, Lane200))
	require.NoError(t, g.AddEdge(terra, mars, Lane100))

	require.NoError(t, g.RemoveEdge(terra, mars))
	edges := MustEdges(t, g, terra)
	require.Len(t, edges, 2)
	assert.Equal(t, jupiter, edges[0].To)
	assert.Equal(t, Lane100, edges[1].Data, "second parallel edge must survive")

	// No jupiter→mars edge: no-op.
	require.NoError(t, g.RemoveEdge(jupiter, mars))

	assert.ErrorIs(t, g.RemoveEdge(terra, missingID), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveEdge(missingID, terra), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveEdgeByName(PlanetTerra, PlanetJupiter))
	assert.Len(t, MustEdges(t, g, terra), 1)
	assert.ErrorIs(t, g.RemoveEdgeByName(PlanetTerra, PlanetMissing), core.ErrPlanetNotFound)
}

// TestGraph_UpdateEdgeDistance VERIFIES the 1.0 floor and first-match mutation.
func TestGraph_UpdateEdgeDistance(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "negative", in: -5, want: 1.0},
		{name: "zero", in: 0, want: 1.0},
		{name: "below floor", in: 0.5, want: 1.0},
		{name: "above floor", in: 2.0, want: 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars)
			require.NoError(t, g.AddEdge(ids[0], ids[1], Lane100))
			require.NoError(t, g.AddEdge(ids[0], ids[1], Lane200))

			require.NoError(t, g.UpdateEdgeDistance(ids[0], ids[1], tc.in))

			edges := MustEdges(t, g, ids[0])
			assert.Equal(t, tc.want, edges[0].Data.Distance)
			assert.Equal(t, Lane100.RiskFactor, edges[0].Data.RiskFactor, "risk untouched")
			assert.Equal(t, Lane200.Distance, edges[1].Data.Distance, "only the first match changes")
		})
	}
}

func TestGraph_UpdateEdgeDistance_NoEdgeAndMissing(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars)

	require.NoError(t, g.UpdateEdgeDistance(ids[0], ids[1], 50))
	assert.Empty(t, MustEdges(t, g, ids[0]))

	assert.ErrorIs(t, g.UpdateEdgeDistance(ids[0], missingID, 50), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.UpdateEdgeDistance(missingID, ids[0], 50), core.ErrVertexNotFound)
}

// TestGraph_EdgesSnapshot VERIFIES Edges returns a copy.
func TestGraph_EdgesSnapshot(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars)
	require.NoError(t, g.AddEdge(ids[0], ids[1], Lane10))

	edges := MustEdges(t, g, ids[0])
	edges[0].Data.Distance = 12345

	assert.Equal(t, Lane10.Distance, MustEdges(t, g, ids[0])[0].Data.Distance)
}

func TestGraph_Artifacts(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars)

	assert.False(t, g.HasArtifact(ids[0]))
	require.NoError(t, g.SetArtifact(ids[0], true))
	assert.True(t, g.HasArtifact(ids[0]))
	assert.False(t, g.HasArtifact(missingID))
	assert.ErrorIs(t, g.SetArtifact(missingID, true), core.ErrVertexNotFound)

	p, err := g.Planet(ids[0])
	require.NoError(t, err)
	assert.Equal(t, core.Planet{ID: ids[0], Name: PlanetTerra, HasArtifact: true}, p)
	_, err = g.Planet(missingID)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_LookupFailures(t *testing.T) {
	g := core.NewGraph()

	_, err := g.VertexIndex(PlanetMissing)
	assert.ErrorIs(t, err, core.ErrPlanetNotFound)
	_, err = g.VertexName(missingID)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.OutDegree(missingID)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(0))
	assert.Empty(t, g.Vertices())
}

// TestGraph_StatsAndClone VERIFIES counts and that a clone is independent.
func TestGraph_StatsAndClone(t *testing.T) {
	g := core.NewGraph()
	ids := MustAddPlanets(t, g, PlanetTerra, PlanetMars, PlanetJupiter)
	require.NoError(t, g.AddEdge(ids[0], ids[1], Lane10))
	require.NoError(t, g.AddEdge(ids[1], ids[2], Lane10))
	require.NoError(t, g.SetArtifact(ids[2], true))
	require.NoError(t, g.RemoveVertex(ids[0]))

	stats := g.Stats()
	assert.Equal(t, core.GraphStats{VertexCount: 2, EdgeCount: 1, ArtifactCount: 1, NextID: 3}, stats)
	assert.Equal(t, 1, g.EdgeCount())

	clone := g.Clone()
	RequireConsistent(t, clone)
	assert.Equal(t, stats, clone.Stats())

	require.NoError(t, clone.RemoveEdge(ids[1], ids[2]))
	assert.Equal(t, 1, g.EdgeCount(), "original untouched by clone mutation")

	id, err := clone.AddVertex(PlanetSaturn)
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(3), id, "clone keeps the id counter")
}
