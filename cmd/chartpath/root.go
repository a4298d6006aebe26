// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/chartio"
	"github.com/katalvlaran/chartpath/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errNoChart is returned when neither --chart nor the config names a chart.
var errNoChart = errors.New("no chart given: use --chart or set chart in the config file")

// app is the state shared by every command of one invocation.
type app struct {
	ctx        context.Context
	log        *logrus.Logger
	cfg        *config.Config
	chartPath  string
	configPath string
	verbose    bool
}

func newRootCmd(ctx context.Context) *cobra.Command {
	a := &app{ctx: ctx, log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:               "chartpath",
		Short:             "Find cheapest routes and minimum spanning forests on a chart",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&a.chartPath, "chart", "c", "", "path to chart file (.txt or .yaml)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newPositionsCmd(a),
		newPathCmd(a),
		newForestCmd(a),
		newPickCmd(a),
		newConvertCmd(a),
		newInteractiveCmd(a, surveyPrompter{}),
		newServeCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.chartPath != "" {
		cfg.Chart = a.chartPath
	}
	a.cfg = cfg

	a.log.SetLevel(cfg.Level())
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	return nil
}

// loadChart reads the configured chart file.
func (a *app) loadChart() (*chart.Chart, error) {
	if a.cfg.Chart == "" {
		return nil, errNoChart
	}

	c, err := chartio.ReadFile(a.cfg.Chart)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"file":      a.cfg.Chart,
		"positions": c.PositionCount(),
		"links":     c.LinkCount(),
	}).Debug("chart loaded")

	return c, nil
}
