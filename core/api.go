// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: aggregated statistics and cloning.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a value snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int      // live vertices
	EdgeCount     int      // directed edges, parallel edges counted separately
	ArtifactCount int      // vertices with HasArtifact set
	NextID        VertexID // id the next AddVertex will return
}

// Stats produces a read-only snapshot of vertex, edge and artifact counts.
//
// Implementation:
//   - Stage 1: Copy the live vertex count and the id counter.
//   - Stage 2: Sum outgoing list sizes and count artifact planets.
//
// Returns:
//   - GraphStats: independent of later mutations.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: g.vertexCount,
		NextID:      g.nextID,
	}
	for id, edges := range g.adjacency {
		stats.EdgeCount += edges.Size()
		if g.HasArtifact(id) {
			stats.ArtifactCount++
		}
	}

	return stats
}

// Clone returns a deep copy: planets (ids, names, flags), edges and the id counter.
//
// Implementation:
//   - Stage 1: Re-register every planet under its original id.
//   - Stage 2: Copy every outgoing list in order.
//   - Stage 3: Carry over the id counter so retired ids stay retired in the copy.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for id, edges := range g.adjacency {
		p, _ := g.planets.planet(id)
		clone.planets.put(id, p.Name)
		clone.planets.setArtifact(id, p.HasArtifact)
		clone.adjacency[id] = edgeListOf(edges.Values())
	}
	clone.vertexCount = g.vertexCount
	clone.nextID = g.nextID

	return clone
}
