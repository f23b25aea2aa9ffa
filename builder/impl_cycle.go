// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits lanes i → (i+1) mod n for i=0..n-1: a one-way ring.
//
// Complexity: O(n) planets + O(n) lanes.

package builder

import "github.com/katalvlaran/starlane/core"

// Cycle returns a Constructor that builds a one-way ring of n planets.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, "n", n, MinCycleNodes)
		}
		ids, err := addPlanets(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addLane(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
