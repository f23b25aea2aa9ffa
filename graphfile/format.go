// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Line-oriented star-map format: Load/Read and Save/Write.
// Policy:
//   - Read clears the target graph first; on error it holds what was parsed so far.
//   - Edge lines with unresolved names are skipped, not reported.
//   - Write emits planets and lanes in ascending id order.

package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/starlane/core"
)

// Section markers and fixed header lines of the format.
const (
	SectionPlanets = "[PLANETS]"
	SectionEdges   = "[EDGES]"

	headerTitle   = "# Cosmic Logistics - Star Graph File"
	headerFormat  = "# Format: [PLANETS] section with planet names, [EDGES] section with transitions"
	edgesColumns  = "# from to distance risk"
	commentPrefix = "#"

	// minEdgeTokens is from, to, distance, risk.
	minEdgeTokens = 4
)

type section int

const (
	sectionNone section = iota
	sectionPlanets
	sectionEdges
)

// Load opens path and reads it into g (see Read).
func Load(path string, g *core.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	if err = Read(f, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Read clears g and parses a star map from r.
//
// Implementation:
//   - Stage 1: Trim each line; skip blanks and '#' comments.
//   - Stage 2: Section markers switch the active section.
//   - Stage 3: Planet lines become vertices in file order.
//   - Stage 4: Edge lines need ≥ 4 tokens; the last two are distance and
//     risk, the leading tokens are split into source and destination names
//     (see splitNames). Unresolvable names skip the line.
//
// Errors carry the 1-based line number.
func Read(r io.Reader, g *core.Graph) error {
	g.Clear()

	p := &parser{g: g}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSpace(sc.Text())); err != nil {
			return fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: read: %w", ErrIO, err)
	}
	slog.Debug("graphfile: read finished",
		"lines", p.line, "planets", g.VertexCount(), "lanes", g.EdgeCount(), "skipped_lanes", p.skipped)

	return nil
}

// parser holds the cursor state of one Read.
type parser struct {
	g       *core.Graph
	section section
	line    int
	skipped int
}

func (p *parser) parseLine(line string) error {
	switch {
	case line == "" || strings.HasPrefix(line, commentPrefix):
		return nil
	case line == SectionPlanets:
		p.section = sectionPlanets
		return nil
	case line == SectionEdges:
		p.section = sectionEdges
		return nil
	}

	switch p.section {
	case sectionPlanets:
		return p.parsePlanet(line)
	case sectionEdges:
		return p.parseEdge(line)
	default:
		// content before any section marker is ignored
		return nil
	}
}

func (p *parser) parsePlanet(name string) error {
	if _, err := p.g.AddVertex(name); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrDuplicatePlanet, name, err)
	}

	return nil
}

func (p *parser) parseEdge(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) < minEdgeTokens {
		return nil
	}
	n := len(tokens)
	distance, err := strconv.ParseFloat(tokens[n-2], 64)
	if err != nil {
		return fmt.Errorf("%w: distance %q", ErrMalformedLine, tokens[n-2])
	}
	risk, err := strconv.ParseFloat(tokens[n-1], 64)
	if err != nil {
		return fmt.Errorf("%w: risk %q", ErrMalformedLine, tokens[n-1])
	}

	from, to, ok := p.splitNames(tokens[:n-2])
	if !ok {
		p.skipped++
		return nil
	}
	if err = p.g.AddEdge(from, to, core.EdgeData{Distance: distance, RiskFactor: risk}); err != nil {
		p.skipped++
	}

	return nil
}

// splitNames recovers (source, destination) from the name tokens by the
// halves rule: the first len/2 tokens name the source, the rest the
// destination. Unequal word counts may therefore not resolve; such lines
// are skipped.
func (p *parser) splitNames(names []string) (core.VertexID, core.VertexID, bool) {
	return p.resolveSplit(names, len(names)/2)
}

func (p *parser) resolveSplit(names []string, at int) (core.VertexID, core.VertexID, bool) {
	from, err := p.g.VertexIndex(strings.Join(names[:at], " "))
	if err != nil {
		return 0, 0, false
	}
	to, err := p.g.VertexIndex(strings.Join(names[at:], " "))
	if err != nil {
		return 0, 0, false
	}

	return from, to, true
}

// Save creates (or truncates) path and writes g to it (see Write).
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %q: %w", ErrIO, path, err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrIO, path, err)
	}

	return nil
}

// Write serialises g: header comments, [PLANETS] one name per line, a blank
// line, then [EDGES] with "from to distance risk" per lane. Distance is
// written with two decimals; risk with the shortest exact representation.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, headerTitle)
	fmt.Fprintln(bw, headerFormat)
	fmt.Fprintln(bw)

	ids := g.Vertices()
	fmt.Fprintln(bw, SectionPlanets)
	for _, id := range ids {
		name, _ := g.VertexName(id)
		fmt.Fprintln(bw, name)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, SectionEdges)
	fmt.Fprintln(bw, edgesColumns)
	for _, id := range ids {
		from, _ := g.VertexName(id)
		edges, _ := g.Edges(id)
		for _, e := range edges {
			to, _ := g.VertexName(e.To)
			fmt.Fprintf(bw, "%s %s %s %s\n", from, to,
				strconv.FormatFloat(e.Data.Distance, 'f', 2, 64),
				strconv.FormatFloat(e.Data.RiskFactor, 'f', -1, 64))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}

	return nil
}
