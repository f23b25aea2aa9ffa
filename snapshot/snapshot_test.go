package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/graphfile"
	"github.com/katalvlaran/starlane/snapshot"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{"Terra", "Mars", "Vega"} {
		_, err := g.AddVertex(n)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdgeByName("Terra", "Mars", core.EdgeData{Distance: 100, RiskFactor: 0.2}))
	require.NoError(t, g.AddEdgeByName("Terra", "Mars", core.EdgeData{Distance: 150}))
	require.NoError(t, g.AddEdgeByName("Mars", "Vega", core.EdgeData{Distance: 40, RiskFactor: 0.1}))

	return g
}

func TestTake(t *testing.T) {
	s := snapshot.Take(sample(t))
	assert.Equal(t, map[string]bool{"Terra": false, "Mars": false, "Vega": false}, s.Planets)
	assert.Equal(t, map[string]string{
		"Terra → Mars #0": "100.00/0.2",
		"Terra → Mars #1": "150.00/0",
		"Mars → Vega #0":  "40.00/0.1",
	}, s.Lanes)
}

func TestFingerprint_StableAcrossReload(t *testing.T) {
	g := sample(t)
	fp := snapshot.Fingerprint(g)
	assert.NotEmpty(t, fp)
	assert.Equal(t, fp, snapshot.Fingerprint(g.Clone()))

	var buf bytes.Buffer
	require.NoError(t, graphfile.Write(&buf, g))
	loaded := core.NewGraph()
	_, _ = loaded.AddVertex("Junk") // shifts the id counter before Read clears
	require.NoError(t, graphfile.Read(&buf, loaded))
	assert.Equal(t, fp, snapshot.Fingerprint(loaded))

	require.NoError(t, g.UpdateEdgeDistance(0, 1, 101))
	assert.NotEqual(t, fp, snapshot.Fingerprint(g))
}

func TestFingerprint_IgnoresPlanetOrder(t *testing.T) {
	a := core.NewGraph()
	_, _ = a.AddVertex("A")
	_, _ = a.AddVertex("B")
	b := core.NewGraph()
	_, _ = b.AddVertex("B")
	_, _ = b.AddVertex("A")
	assert.Equal(t, snapshot.Fingerprint(a), snapshot.Fingerprint(b))
}

func TestDiff(t *testing.T) {
	before := sample(t)
	after := before.Clone()
	require.NoError(t, after.RemoveVertexByName("Vega"))
	_, err := after.AddVertex("Rigel")
	require.NoError(t, err)
	require.NoError(t, after.UpdateEdgeDistance(0, 1, 120))

	changes, err := snapshot.Diff(snapshot.Take(before), snapshot.Take(after))
	require.NoError(t, err)

	got := make([]string, len(changes))
	for i, c := range changes {
		got[i] = c.String()
	}
	assert.ElementsMatch(t, []string{
		"+ planets Rigel",
		"- planets Vega",
		"- lanes Mars → Vega #0",
		"~ lanes Terra → Mars #0: 100.00/0.2 ⇒ 120.00/0.2",
	}, got)
	assert.Equal(t, "planets", changes[0].Area)
}

func TestDiff_Identical(t *testing.T) {
	s := snapshot.Take(sample(t))
	changes, err := snapshot.Diff(s, s)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
