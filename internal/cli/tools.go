// SPDX-License-Identifier: MIT
//
// File: tools.go
// Role: Map management subcommands: generate, stats, diff, bench.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starlane/analytics"
	"github.com/katalvlaran/starlane/builder"
	"github.com/katalvlaran/starlane/dfs"
	"github.com/katalvlaran/starlane/graphfile"
	"github.com/katalvlaran/starlane/snapshot"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		planets, lanes int
		seed           int64
		topology       string
		names          string
	)
	cmd := &cobra.Command{
		Use:   "generate OUT",
		Short: "Write a generated star map to OUT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nameFn, err := builder.NameScheme(names)
			if err != nil {
				return err
			}
			cons, err := builder.Topology(topology, planets, lanes)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithNameScheme(nameFn)},
				cons,
			)
			if err != nil {
				return err
			}
			if err := graphfile.Save(args[0], g); err != nil {
				return err
			}
			a.logger.Info("cli: map generated", "path", args[0], "topology", topology,
				"planets", g.VertexCount(), "lanes", g.EdgeCount())
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[0], snapshot.Fingerprint(g))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&planets, "planets", 10, "number of planets")
	f.IntVar(&lanes, "edges", 30, "number of random lanes (random topology only)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&topology, "topology", "random", "random, path, cycle, star or complete")
	f.StringVar(&names, "names", "planet", "planet, excel or prefix:<text>")

	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print planet, lane and loop counts with a content fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			_, loops, err := dfs.DetectCycles(g)
			if err != nil {
				return err
			}
			s := g.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "planets\t%d\n", s.VertexCount)
			fmt.Fprintf(out, "lanes\t%d\n", s.EdgeCount)
			fmt.Fprintf(out, "loops\t%d\n", len(loops))
			fmt.Fprintf(out, "fingerprint\t%s\n", snapshot.Fingerprint(g))

			return nil
		},
	}
}

func newDiffCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "List planets and lanes that differ between two map files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ga, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			gb, err := a.loadMap(args[1])
			if err != nil {
				return err
			}
			changes, err := snapshot.Diff(snapshot.Take(ga), snapshot.Take(gb))
			if err != nil {
				return err
			}
			for _, c := range changes {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			if len(changes) > 0 {
				return &ExitError{Code: 3, Message: fmt.Sprintf("%d differences", len(changes))}
			}

			return nil
		},
	}
}

func newBenchCommand(a *app) *cobra.Command {
	var (
		format string
		sizes  []int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time route queries on random maps of increasing size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("sizes") {
				sizes = a.cfg.Analytics.Sizes
			}
			opts := append(a.cfg.RunnerOptions(), analytics.WithLogger(a.logger))
			results, err := analytics.NewRunner(opts...).RunPerformanceTests(cmd.Context(), sizes)
			if err != nil {
				return err
			}

			return analytics.WriteReport(cmd.OutOrStdout(), results, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", analytics.FormatTable, "table, json or yaml")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "planet counts to test (default from config)")

	return cmd
}
