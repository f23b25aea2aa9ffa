// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, e.g. "Path: n=1 < min=2: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (planet or lane count)
// is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRange indicates a distance or risk range that is empty, inverted, or
// outside the lane domain (distance ≥ core.MinEdgeDistance, risk ≥ 0).
var ErrBadRange = errors.New("builder: invalid value range")

// ErrConstructFailed indicates a nil constructor or a core mutation that
// failed while assembling the map (e.g. a planet name collision between
// two composed constructors).
var ErrConstructFailed = errors.New("builder: construction failed")
