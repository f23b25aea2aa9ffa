package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_BothDirections checks put/drop keep byID and byName in lockstep.
func TestRegistry_BothDirections(t *testing.T) {
	r := newRegistry()
	r.put(0, "Terra")
	r.put(1, "Mars")
	require.Equal(t, 2, r.len())

	id, ok := r.idOf("Mars")
	require.True(t, ok)
	name, ok := r.nameOf(id)
	require.True(t, ok)
	assert.Equal(t, "Mars", name)

	require.True(t, r.drop(1))
	assert.False(t, r.hasName("Mars"))
	_, ok = r.nameOf(1)
	assert.False(t, ok)
	assert.Equal(t, 1, r.len())
	assert.Len(t, r.byName, len(r.byID))

	assert.False(t, r.drop(1), "second drop reports unknown id")
}

func TestRegistry_ArtifactAndReset(t *testing.T) {
	r := newRegistry()
	r.put(5, "Vega")
	require.True(t, r.setArtifact(5, true))
	p, ok := r.planet(5)
	require.True(t, ok)
	assert.True(t, p.HasArtifact)
	assert.False(t, r.setArtifact(6, true))

	r.reset()
	assert.Equal(t, 0, r.len())
	assert.Empty(t, r.names())
}
