// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits a lane for every ordered pair (i, j), i ≠ j, i asc then j asc.
//
// Complexity: O(n) planets + O(n(n-1)) lanes.

package builder

import "github.com/katalvlaran/starlane/core"

// Complete returns a Constructor that connects every planet to every other.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, "n", n, MinCompleteNodes)
		}
		ids, err := addPlanets(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				if err = addLane(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
