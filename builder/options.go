// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Nil functions and nil RNGs panic in the option constructor (programmer error).
//   - Out-of-domain ranges are recorded and surfaced as ErrBadRange by BuildGraph.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/starlane/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the planet naming function: index -> name.
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceRange sets the lane distance interval [lo, hi).
// Requires core.MinEdgeDistance ≤ lo ≤ hi.
func WithDistanceRange(lo, hi float64) BuilderOption {
	return func(c *builderConfig) {
		if lo < core.MinEdgeDistance || hi < lo {
			c.setErr(fmt.Errorf("distance range [%g,%g): %w", lo, hi, ErrBadRange))
			return
		}
		c.distance = valueRange{lo: lo, hi: hi}
	}
}

// WithRiskRange sets the lane risk interval [lo, hi). Requires 0 ≤ lo ≤ hi.
func WithRiskRange(lo, hi float64) BuilderOption {
	return func(c *builderConfig) {
		if lo < 0 || hi < lo {
			c.setErr(fmt.Errorf("risk range [%g,%g): %w", lo, hi, ErrBadRange))
			return
		}
		c.risk = valueRange{lo: lo, hi: hi}
	}
}

func (c *builderConfig) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
