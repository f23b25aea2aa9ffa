// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// helpers.go - helpers shared by the constructors (planet and lane insertion, size checks).

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// addPlanets inserts cfg.nameFn(0..n-1) and returns the allocated ids in
// index order. A name collision (e.g. two composed constructors using the
// same scheme) fails with ErrConstructFailed.
func addPlanets(g *core.Graph, cfg builderConfig, method string, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		name := cfg.nameFn(i)
		id, err := g.AddVertex(name)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w: %w", method, name, ErrConstructFailed, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addLane inserts from→to with a payload drawn from cfg.
func addLane(g *core.Graph, cfg builderConfig, method string, from, to core.VertexID) error {
	data := cfg.lane()
	if err := g.AddEdge(from, to, data); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}

// tooFew formats the size-validation error shared by every constructor.
func tooFew(method, param string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, minimum, ErrTooFewVertices)
}
