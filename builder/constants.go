// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// constants.go - method tags, size minima and lane defaults.

package builder

// Method tags prefix constructor errors.
const (
	MethodPath          = "Path"
	MethodCycle         = "Cycle"
	MethodStar          = "Star"
	MethodComplete      = "Complete"
	MethodRandomStarMap = "RandomStarMap"
)

// Minimum planet counts per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinRandomNodes   = 1
)

// Lane defaults for generated maps: distance ∈ [10,1000), risk ∈ [0,0.5).
const (
	DefaultMinDistance = 10.0
	DefaultMaxDistance = 1000.0
	DefaultMinRisk     = 0.0
	DefaultMaxRisk     = 0.5
)

// AttemptsPerEdge bounds RandomStarMap sampling at edges*AttemptsPerEdge draws.
const AttemptsPerEdge = 10

// DefaultNamePrefix is the prefix of DefaultNameFn ("Planet_0", "Planet_1", ...).
const DefaultNamePrefix = "Planet_"
