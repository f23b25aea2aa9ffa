// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz DOT export of a star map, with an optional highlighted route.

package graphfile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/starlane/core"
)

const dotGraphName = "starlane"

// DOT styling.
const (
	highlightColor = `"#d62728"`
	artifactFill   = `"#ffd700"`
)

// DOTOption configures WriteDOT.
type DOTOption func(*dotOptions)

type dotOptions struct {
	rankdir string
	path    []core.VertexID
}

// WithHighlightedPath colours the planets and lanes of a solver route.
// Consecutive pairs of path are highlighted; the first matching lane of
// each pair is used when parallel lanes exist.
func WithHighlightedPath(path []core.VertexID) DOTOption {
	return func(o *dotOptions) {
		o.path = path
	}
}

// WithRankDir sets the Graphviz layout direction ("LR", "TB", ...).
func WithRankDir(dir string) DOTOption {
	return func(o *dotOptions) {
		if dir != "" {
			o.rankdir = dir
		}
	}
}

// WriteDOT renders g as a directed DOT graph. Planets become nodes labelled
// by name (artifact planets are filled); lanes are labelled with their cost.
func WriteDOT(w io.Writer, g *core.Graph, opts ...DOTOption) error {
	o := dotOptions{rankdir: "LR"}
	for _, opt := range opts {
		opt(&o)
	}

	graph, err := buildDOT(g, o)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, graph.String()); err != nil {
		return fmt.Errorf("%w: write dot: %w", ErrIO, err)
	}

	return nil
}

func buildDOT(g *core.Graph, o dotOptions) (*gographviz.Graph, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(dotGraphName); err != nil {
		return nil, err
	}
	if err := graph.SetDir(true); err != nil {
		return nil, err
	}
	if err := graph.AddAttr(dotGraphName, "rankdir", o.rankdir); err != nil {
		return nil, fmt.Errorf("graphfile: rankdir %q: %w", o.rankdir, err)
	}

	onPath, hops := routeSets(o.path)

	for _, id := range g.Vertices() {
		planet, _ := g.Planet(id)
		attrs := map[string]string{
			"label": strconv.Quote(planet.Name),
			"shape": "ellipse",
		}
		if planet.HasArtifact {
			attrs["style"] = "filled"
			attrs["fillcolor"] = artifactFill
		}
		if onPath[id] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = "2"
		}
		if err := graph.AddNode(dotGraphName, nodeID(id), attrs); err != nil {
			return nil, err
		}
	}

	for _, id := range g.Vertices() {
		edges, _ := g.Edges(id)
		for _, e := range edges {
			attrs := map[string]string{
				"label": strconv.Quote(strconv.FormatFloat(e.Data.Cost(), 'f', 1, 64)),
			}
			hop := [2]core.VertexID{e.From, e.To}
			if hops[hop] {
				attrs["color"] = highlightColor
				attrs["penwidth"] = "2"
				delete(hops, hop) // first parallel lane only
			}
			if err := graph.AddEdge(nodeID(e.From), nodeID(e.To), true, attrs); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}

// routeSets indexes a path by planet and by consecutive hop.
func routeSets(path []core.VertexID) (map[core.VertexID]bool, map[[2]core.VertexID]bool) {
	onPath := make(map[core.VertexID]bool, len(path))
	hops := make(map[[2]core.VertexID]bool, len(path))
	for i, id := range path {
		onPath[id] = true
		if i > 0 {
			hops[[2]core.VertexID{path[i-1], id}] = true
		}
	}

	return onPath, hops
}

// nodeID gives every planet a DOT-safe identifier; names go in labels.
func nodeID(id core.VertexID) string {
	return "p" + strconv.Itoa(int(id))
}
