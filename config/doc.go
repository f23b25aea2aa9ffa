// Package config loads the starlane CLI configuration.
//
// Lookup order:
//  1. $STARLANE_CONFIG
//  2. ./starlane.yaml
//  3. built-in defaults
//
// Example file:
//
//	log:
//	  level: debug
//	  format: json
//	analytics:
//	  sizes: [10, 100, 1000]
//	  edges_multiplier: 3
//	  runs_per_size: 5
//	  seed: 42
//	render:
//	  rankdir: TB
package config
