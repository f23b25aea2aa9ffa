// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits lanes (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) planets + O(n-1) lanes.

package builder

import "github.com/katalvlaran/starlane/core"

// Path returns a Constructor that builds a one-way chain of n planets.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, "n", n, MinPathNodes)
		}
		ids, err := addPlanets(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addLane(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
