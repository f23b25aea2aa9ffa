// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared as Constructor closures in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical maps.

package builder

import (
	"fmt"

	"github.com/katalvlaran/starlane/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel-wrapped errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first invalid option
// or constructor error is wrapped with "BuildGraph: %w" and returned; no
// partial graph is returned.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RandomStarMap builds a map of n planets and up to edges random directed
// lanes. It is shorthand for BuildGraph(opts, RandomLanes(n, edges)) and
// requires WithSeed or WithRand.
//
// Example:
//
//	g, err := builder.RandomStarMap(100, 300, builder.WithSeed(42))
func RandomStarMap(n, edges int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, RandomLanes(n, edges))
}

// Topology resolves a topology name to a Constructor of n planets.
// "random" uses edges; the deterministic shapes ignore it.
func Topology(name string, n, edges int) (Constructor, error) {
	switch name {
	case "", "random":
		return RandomLanes(n, edges), nil
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("builder: unknown topology %q: %w", name, ErrConstructFailed)
	}
}
