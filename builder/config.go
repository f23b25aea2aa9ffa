// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - nameFn   = DefaultNameFn       ("Planet_0","Planet_1",...)
//   - rng      = nil                 (pure/deterministic unless seeded)
//   - distance = [10, 1000)
//   - risk     = [0, 0.5)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/starlane/core"
)

// valueRange is a half-open interval [lo, hi). lo == hi means constant.
type valueRange struct {
	lo, hi float64
}

// draw samples the range; a nil rng or a degenerate range yields lo.
func (r valueRange) draw(rng *rand.Rand) float64 {
	if rng == nil || r.hi == r.lo {
		return r.lo
	}

	return r.lo + rng.Float64()*(r.hi-r.lo)
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	nameFn   NameFn
	rng      *rand.Rand
	distance valueRange
	risk     valueRange

	// first invalid option, surfaced by BuildGraph
	err error
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:   DefaultNameFn,
		rng:      nil,
		distance: valueRange{lo: DefaultMinDistance, hi: DefaultMaxDistance},
		risk:     valueRange{lo: DefaultMinRisk, hi: DefaultMaxRisk},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// lane draws one lane payload. Without an RNG every lane gets the lower
// bounds, so deterministic topologies stay reproducible.
func (c builderConfig) lane() core.EdgeData {
	return core.EdgeData{
		Distance:   c.distance.draw(c.rng),
		RiskFactor: c.risk.draw(c.rng),
	}
}
