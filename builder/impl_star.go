// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Planet index 0 is the hub; indices 1..n-1 are leaves.
//   - Emits hub → leaf[i] then leaf[i] → hub for each leaf in increasing order,
//     so every leaf can reach every other leaf through the hub.
//
// Complexity: O(n) planets + O(2n-2) lanes.

package builder

import "github.com/katalvlaran/starlane/core"

// Star returns a Constructor that builds a hub-and-spoke map of n planets.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, "n", n, MinStarNodes)
		}
		ids, err := addPlanets(g, cfg, MethodStar, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err = addLane(g, cfg, MethodStar, hub, leaf); err != nil {
				return err
			}
			if err = addLane(g, cfg, MethodStar, leaf, hub); err != nil {
				return err
			}
		}

		return nil
	}
}
