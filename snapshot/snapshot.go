// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Name-keyed, id-independent view of a star map; fingerprint and diff.
// Policy:
//   - Planets and lanes are keyed by names, so a map and its reloaded copy
//     compare equal even when ids differ.
//   - Distances are rounded to two decimals, matching the text format.

package snapshot

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/r3labs/diff/v3"

	"github.com/katalvlaran/starlane/core"
)

// Change kinds reported by Diff.
const (
	Created = diff.CREATE
	Updated = diff.UPDATE
	Deleted = diff.DELETE
)

// Snapshot is a comparable copy of a map's content.
//
// Planets maps name → artifact flag. Lanes maps "from → to #k" → "distance/risk",
// where k counts parallel lanes of the same pair in insertion order.
type Snapshot struct {
	Planets map[string]bool   `diff:"planets"`
	Lanes   map[string]string `diff:"lanes"`
}

// Change is one difference between two snapshots.
type Change struct {
	Kind string // Created, Updated or Deleted
	Area string // "planets" or "lanes"
	Key  string // planet name or lane key
	From any
	To   any
}

// String renders "+ planets Vega", "~ lanes A → B #0: 10.00/0 ⇒ 12.00/0", ...
func (c Change) String() string {
	switch c.Kind {
	case Created:
		return fmt.Sprintf("+ %s %s", c.Area, c.Key)
	case Deleted:
		return fmt.Sprintf("- %s %s", c.Area, c.Key)
	default:
		return fmt.Sprintf("~ %s %s: %v ⇒ %v", c.Area, c.Key, c.From, c.To)
	}
}

// Take captures g.
func Take(g *core.Graph) Snapshot {
	s := Snapshot{
		Planets: make(map[string]bool, g.VertexCount()),
		Lanes:   make(map[string]string, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		p, _ := g.Planet(id)
		s.Planets[p.Name] = p.HasArtifact

		edges, _ := g.Edges(id)
		seen := make(map[core.VertexID]int)
		for _, e := range edges {
			to, _ := g.VertexName(e.To)
			key := fmt.Sprintf("%s → %s #%d", p.Name, to, seen[e.To])
			seen[e.To]++
			s.Lanes[key] = laneValue(e.Data)
		}
	}

	return s
}

func laneValue(d core.EdgeData) string {
	return strconv.FormatFloat(d.Distance, 'f', 2, 64) + "/" + strconv.FormatFloat(d.RiskFactor, 'f', -1, 64)
}

// Fingerprint returns a short base58 SHA-256 digest of the snapshot.
// Equal content yields equal fingerprints regardless of ids or insertion
// order of planets.
func (s Snapshot) Fingerprint() string {
	h := sha256.New()
	for _, name := range sortedKeys(s.Planets) {
		fmt.Fprintf(h, "P\x00%s\x00%t\n", name, s.Planets[name])
	}
	for _, key := range sortedKeys(s.Lanes) {
		fmt.Fprintf(h, "L\x00%s\x00%s\n", key, s.Lanes[key])
	}

	return base58.Encode(h.Sum(nil))
}

// Fingerprint is shorthand for Take(g).Fingerprint().
func Fingerprint(g *core.Graph) string {
	return Take(g).Fingerprint()
}

// Diff lists the changes turning a into b, sorted by area then key.
func Diff(a, b Snapshot) ([]Change, error) {
	log, err := diff.Diff(a, b)
	if err != nil {
		return nil, fmt.Errorf("snapshot: diff: %w", err)
	}

	changes := make([]Change, 0, len(log))
	for _, c := range log {
		if len(c.Path) < 2 {
			continue
		}
		changes = append(changes, Change{
			Kind: c.Type,
			Area: c.Path[0],
			Key:  strings.Join(c.Path[1:], "."),
			From: c.From,
			To:   c.To,
		})
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Area != changes[j].Area {
			return changes[i].Area > changes[j].Area // planets before lanes
		}
		return changes[i].Key < changes[j].Key
	})

	return changes, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
