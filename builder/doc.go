// Package builder generates star maps for tests, demos and benchmarks.
//
// Components:
//
//   - BuildGraph(opts, cons...): creates an empty core.Graph and applies
//     Constructors in order.
//   - Constructors:
//     – RandomLanes(n, edges): n planets, up to `edges` random directed
//     lanes without self-loops, at most edges*AttemptsPerEdge draws.
//     – Path(n), Cycle(n), Star(n), Complete(n): deterministic shapes.
//   - RandomStarMap(n, edges, opts...): shorthand for the random model.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic draws (required by RandomLanes).
//     – WithNameScheme: planet naming (DefaultNameFn gives "Planet_<i>").
//     – WithDistanceRange / WithRiskRange: lane payload intervals
//     (defaults [10,1000) and [0,0.5)).
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical maps.
//   - Without an RNG, every lane takes the lower bound of each range.
//   - Invalid ranges surface as ErrBadRange from BuildGraph; nil option
//     arguments panic at the option constructor.
package builder
