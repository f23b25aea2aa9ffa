// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: Query subcommands over a star-map file: route, distances, reach, dot.

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starlane/bfs"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dfs"
	"github.com/katalvlaran/starlane/dijkstra"
	"github.com/katalvlaran/starlane/graphfile"
)

// loadMap reads the star-map file at path.
func (a *app) loadMap(path string) (*core.Graph, error) {
	g := core.NewGraph()
	if err := graphfile.Load(path, g); err != nil {
		return nil, err
	}
	a.logger.Debug("cli: map loaded", "path", path, "planets", g.VertexCount(), "lanes", g.EdgeCount())

	return g, nil
}

func newRouteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FILE FROM TO",
		Short: "Print the cheapest risk-weighted route between two planets",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			res := dijkstra.NewFinder(g, dijkstra.WithLogger(a.logger)).FindShortestPathByName(args[1], args[2])
			if !res.PathExists {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %s to %s\n", args[1], args[2])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func newDistancesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distances FILE FROM",
		Short: "Print the cheapest cost from one planet to every other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			start, err := g.VertexIndex(args[1])
			if err != nil {
				return err
			}
			dist := dijkstra.NewFinder(g, dijkstra.WithLogger(a.logger)).FindAllShortestPaths(start)
			out := cmd.OutOrStdout()
			for _, id := range g.Vertices() {
				name, _ := g.VertexName(id)
				if math.IsInf(dist[id], 1) {
					fmt.Fprintf(out, "%s\tunreachable\n", name)
					continue
				}
				fmt.Fprintf(out, "%s\t%.2f\n", name, dist[id])
			}

			return nil
		},
	}
}

func newReachCommand(a *app) *cobra.Command {
	var (
		maxDepth   int
		maxRisk    float64
		depthFirst bool
	)
	cmd := &cobra.Command{
		Use:   "reach FILE FROM",
		Short: "List planets reachable from FROM with their jump counts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			if depthFirst {
				return a.reachDepthFirst(cmd, g, args[1], maxDepth, maxRisk)
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth)}
			if cmd.Flags().Changed("max-risk") {
				opts = append(opts, bfs.WithMaxRisk(maxRisk))
			}
			res, err := bfs.ReachableByName(g, args[1], opts...)
			if err != nil {
				return err
			}
			for _, id := range res.Order {
				name, _ := g.VertexName(id)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, res.Depth[id])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many jumps (0 = unlimited)")
	cmd.Flags().Float64Var(&maxRisk, "max-risk", 1, "ignore lanes riskier than this")
	cmd.Flags().BoolVar(&depthFirst, "depth-first", false, "list planets in depth-first discovery order")

	return cmd
}

// reachDepthFirst prints planets in depth-first discovery order with their
// tree depth.
func (a *app) reachDepthFirst(cmd *cobra.Command, g *core.Graph, from string, maxDepth int, maxRisk float64) error {
	start, err := g.VertexIndex(from)
	if err != nil {
		return err
	}
	opts := []dfs.Option{
		dfs.WithContext(cmd.Context()),
		dfs.WithOnVisit(func(id core.VertexID, depth int) error {
			name, _ := g.VertexName(id)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, depth)
			return err
		}),
	}
	if maxDepth > 0 {
		opts = append(opts, dfs.WithMaxDepth(maxDepth))
	}
	if cmd.Flags().Changed("max-risk") {
		opts = append(opts, dfs.WithFilterEdge(func(e core.Edge) bool { return e.Data.RiskFactor <= maxRisk }))
	}
	res, err := dfs.Walk(g, start, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("cli: depth-first walk finished", "visited", len(res.Depth), "skipped_lanes", res.SkippedLanes)

	return nil
}

func newDOTCommand(a *app) *cobra.Command {
	var from, to, rankDir string
	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Render the map as Graphviz DOT, optionally highlighting a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			if rankDir == "" {
				rankDir = a.cfg.Render.RankDir
			}
			opts := []graphfile.DOTOption{graphfile.WithRankDir(rankDir)}
			if from != "" || to != "" {
				res := dijkstra.NewFinder(g, dijkstra.WithLogger(a.logger)).FindShortestPathByName(from, to)
				if !res.PathExists {
					a.logger.Warn("cli: nothing to highlight", "from", from, "to", to)
				}
				opts = append(opts, graphfile.WithHighlightedPath(res.Path))
			}

			return graphfile.WriteDOT(cmd.OutOrStdout(), g, opts...)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "route start to highlight")
	cmd.Flags().StringVar(&to, "to", "", "route end to highlight")
	cmd.Flags().StringVar(&rankDir, "rankdir", "", "layout direction (default from config)")

	return cmd
}
