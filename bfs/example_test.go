package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/starlane/bfs"
	"github.com/katalvlaran/starlane/core"
)

// ExampleReachable lists planets within two jumps of Sol.
func ExampleReachable() {
	g := core.NewGraph()
	for _, name := range []string{"Sol", "Vega", "Rigel", "Deneb"} {
		_, _ = g.AddVertex(name)
	}
	lane := core.EdgeData{Distance: 10}
	_ = g.AddEdgeByName("Sol", "Vega", lane)
	_ = g.AddEdgeByName("Vega", "Rigel", lane)
	_ = g.AddEdgeByName("Rigel", "Deneb", lane)

	res, _ := bfs.ReachableByName(g, "Sol", bfs.WithMaxDepth(2))
	for _, id := range res.Order {
		name, _ := g.VertexName(id)
		fmt.Printf("%s at %d\n", name, res.Depth[id])
	}

	// Output:
	// Sol at 0
	// Vega at 1
	// Rigel at 2
}
