// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// impl_random.go - implementation of RandomLanes(n, edges) constructor.
//
// Model:
//   - n planets named cfg.nameFn(0..n-1).
//   - Draw (from, to) uniformly; skip self-pairs; add the lane otherwise.
//     Parallel lanes between the same pair are allowed.
//   - Stop after `edges` lanes or edges*AttemptsPerEdge draws, whichever
//     comes first, so the lane count may fall short for tiny maps.
//
// Contract:
//   - n ≥ 1 and edges ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n + edges*AttemptsPerEdge).
//   - Space: O(n) for the id table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// RandomLanes returns a Constructor that samples a random star map.
func RandomLanes(n, edges int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate early; no side effects on invalid input.
		if n < MinRandomNodes {
			return tooFew(MethodRandomStarMap, "n", n, MinRandomNodes)
		}
		if edges < 0 {
			return tooFew(MethodRandomStarMap, "edges", edges, 0)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomStarMap, ErrNeedRandSource)
		}

		// 2) Planets in ascending index order.
		ids, err := addPlanets(g, cfg, MethodRandomStarMap, n)
		if err != nil {
			return err
		}

		// 3) Bounded rejection sampling of lanes.
		maxAttempts := edges * AttemptsPerEdge
		for added, attempts := 0, 0; added < edges && attempts < maxAttempts; attempts++ {
			from, to := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if from == to {
				continue
			}
			if err = addLane(g, cfg, MethodRandomStarMap, ids[from], ids[to]); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
