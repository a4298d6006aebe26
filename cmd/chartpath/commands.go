// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chartpath/chartio"
	"github.com/katalvlaran/chartpath/render"
	"github.com/katalvlaran/chartpath/server"
	"github.com/katalvlaran/chartpath/shortest"
	"github.com/katalvlaran/chartpath/spanning"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPositionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List the positions of the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadChart()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range c.Positions() {
				fmt.Fprintf(out, "%s\t%g\t%g\t%d links\n", p.Name(), p.X(), p.Y(), len(p.Links()))
			}

			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var asGeoJSON, draw bool
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find the cheapest route between two positions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadChart()
			if err != nil {
				return err
			}

			var stats shortest.Stats
			p, err := shortest.FindShortestPath(c, args[0], args[1],
				shortest.WithContext(a.ctx),
				shortest.WithLogger(a.log),
				shortest.WithStats(&stats),
			)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"dequeues":   stats.Dequeues,
				"enqueues":   stats.Enqueues,
				"expansions": stats.Expansions,
			}).Debug("search finished")

			out := cmd.OutOrStdout()
			switch {
			case asGeoJSON:
				g := render.NewGeoJSONRenderer()
				if err := render.Path(g, p); err != nil {
					return err
				}
				return writeGeoJSON(cmd, g)
			case draw:
				return render.Path(render.NewTextRenderer(out), p)
			default:
				_, err := fmt.Fprintln(out, p)
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "print the route as GeoJSON")
	cmd.Flags().BoolVar(&draw, "draw", false, "print every drawn link and label")

	return cmd
}

func newForestCmd(a *app) *cobra.Command {
	var strategy string
	var asGeoJSON bool
	cmd := &cobra.Command{
		Use:   "forest",
		Short: "Build the minimum spanning forest of the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("strategy") {
				a.cfg.Strategy = strategy
			}
			st, err := spanning.ParseStrategy(a.cfg.Strategy)
			if err != nil {
				return err
			}
			c, err := a.loadChart()
			if err != nil {
				return err
			}

			links, err := spanning.BuildMinimumSpanningForest(c,
				spanning.WithStrategy(st),
				spanning.WithContext(a.ctx),
				spanning.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			if asGeoJSON {
				g := render.NewGeoJSONRenderer()
				if err := render.Links(g, links); err != nil {
					return err
				}
				return writeGeoJSON(cmd, g)
			}

			out := cmd.OutOrStdout()
			for _, l := range links {
				fmt.Fprintln(out, l)
			}
			_, err = fmt.Fprintf(out, "total cost %g over %d links\n", spanning.TotalCost(links), len(links))

			return err
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "component lookup: scan or dsu")
	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "print the forest as GeoJSON")

	return cmd
}

func newPickCmd(a *app) *cobra.Command {
	var radius float64
	cmd := &cobra.Command{
		Use:   "pick X Y",
		Short: "Name the position at a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			if cmd.Flags().Changed("radius") {
				a.cfg.PickRadius = radius
			}
			c, err := a.loadChart()
			if err != nil {
				return err
			}

			name, ok := c.PositionAt(orb.Point{x, y}, a.cfg.PickRadius)
			if !ok {
				return fmt.Errorf("no position within %g of (%g, %g)", a.cfg.PickRadius, x, y)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)

			return err
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 0, "pick radius (default from config)")

	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert OUT",
		Short: "Write the chart to OUT, as YAML when OUT ends in .yaml or .yml",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.loadChart()
			if err != nil {
				return err
			}
			if err := chartio.WriteFile(args[0], c); err != nil {
				return err
			}
			a.log.WithField("file", args[0]).Info("chart written")

			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Listen = addr
			}
			c, err := a.loadChart()
			if err != nil {
				return err
			}

			handler := server.NewHandler(c, a.log,
				server.WithPickRadius(a.cfg.PickRadius),
				server.WithStrategy(a.cfg.SpanningStrategy()),
			)

			return server.ListenAndServe(a.ctx, a.cfg.Listen, handler, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func writeGeoJSON(cmd *cobra.Command, g *render.GeoJSONRenderer) error {
	raw, err := g.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))

	return err
}
