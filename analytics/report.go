// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Render benchmark buckets as a table, JSON or YAML.

package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ghodss/yaml"
)

// ErrUnknownFormat is returned by WriteReport for an unsupported format.
var ErrUnknownFormat = errors.New("analytics: unknown report format")

// Report formats accepted by WriteReport.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// WriteReport renders results to w. JSON and YAML share the struct's json tags.
func WriteReport(w io.Writer, results []PerformanceResult, format string) error {
	switch format {
	case "", FormatTable:
		return writeTable(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		out, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("analytics: encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, results []PerformanceResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PLANETS\tLANES\tRUNS\tAVG TIME\tFOUND\tAVG COST\t")
	for _, r := range results {
		cost := "-"
		if r.PathFound {
			cost = fmt.Sprintf("%.2f", r.PathCost)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%d/%d\t%s\t\n",
			r.GraphSize, r.EdgeCount, r.Runs, r.Elapsed, r.PathsFound, r.Runs, cost)
	}

	return tw.Flush()
}
