// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/render"
	"github.com/katalvlaran/chartpath/shortest"
	"github.com/katalvlaran/chartpath/spanning"
	"github.com/spf13/cobra"
)

const (
	actionRoute  = "Find a route"
	actionForest = "Build the minimum spanning forest"
	actionQuit   = "Quit"
)

// prompter asks the user to choose.
type prompter interface {
	Select(message string, options []string) (string, error)
}

// surveyPrompter asks on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	return answer, nil
}

func newInteractiveCmd(a *app, ask prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick positions from a menu and draw routes between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadChart()
			if err != nil {
				return err
			}

			return runInteractive(a, c, ask, render.NewTextRenderer(cmd.OutOrStdout()))
		},
	}
}

func runInteractive(a *app, c *chart.Chart, ask prompter, r *render.TextRenderer) error {
	names := c.Names()
	for {
		if err := a.ctx.Err(); err != nil {
			return err
		}

		action, err := ask.Select("What next?", []string{actionRoute, actionForest, actionQuit})
		if err != nil {
			return err
		}

		switch action {
		case actionRoute:
			from, err := ask.Select("Start position:", names)
			if err != nil {
				return err
			}
			to, err := ask.Select("End position:", names)
			if err != nil {
				return err
			}
			p, err := shortest.FindShortestPath(c, from, to,
				shortest.WithContext(a.ctx),
				shortest.WithLogger(a.log),
			)
			if err != nil {
				a.log.WithError(err).Warn("no route")
				continue
			}
			if err := render.Path(r, p); err != nil {
				return err
			}
			a.log.Infof("route %s", p)

		case actionForest:
			links, err := spanning.BuildMinimumSpanningForest(c,
				spanning.WithStrategy(a.cfg.SpanningStrategy()),
				spanning.WithContext(a.ctx),
				spanning.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			if err := render.Links(r, links); err != nil {
				return err
			}
			a.log.Infof("forest of %d links, total cost %g", len(links), spanning.TotalCost(links))

		case actionQuit:
			return nil

		default:
			return fmt.Errorf("unknown action %q", action)
		}
	}
}
