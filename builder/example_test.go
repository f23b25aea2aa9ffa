package builder_test

import (
	"fmt"

	"github.com/katalvlaran/starlane/builder"
)

// ExampleRandomStarMap builds a reproducible random map.
func ExampleRandomStarMap() {
	g, err := builder.RandomStarMap(5, 8, builder.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	name, _ := g.VertexName(4)
	fmt.Println(name)

	// Output:
	// 5 8
	// Planet_4
}

// ExampleBuildGraph composes a deterministic ring with custom names.
func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithNameScheme(builder.ExcelColumnNameFn)},
		builder.Cycle(4),
	)
	edges, _ := g.Edges(3)
	to, _ := g.VertexName(edges[0].To)
	fmt.Println("D →", to)

	// Output:
	// D → A
}
