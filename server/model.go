// SPDX-License-Identifier: MIT

package server

import (
	"github.com/katalvlaran/chartpath/chart"
)

// PositionModel is a position as listed by /positions.
type PositionModel struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// LinkModel is a link as listed by /links and inside results.
type LinkModel struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Cost float64 `json:"cost"`
}

// PickModel is the answer of /pick.
type PickModel struct {
	Name string `json:"name"`
}

// PathModel is the answer of /path.
type PathModel struct {
	From      string      `json:"from"`
	To        string      `json:"to"`
	Cost      float64     `json:"cost"`
	Positions []string    `json:"positions"`
	Links     []LinkModel `json:"links"`
}

// ForestModel is the answer of /forest.
type ForestModel struct {
	Strategy string      `json:"strategy"`
	Cost     float64     `json:"cost"`
	Links    []LinkModel `json:"links"`
}

// ChartModel summarises the served chart.
type ChartModel struct {
	Image     string     `json:"image,omitempty"`
	Positions int        `json:"positions"`
	Links     int        `json:"links"`
	Min       [2]float64 `json:"min"`
	Max       [2]float64 `json:"max"`
}

func newPositionModel(p *chart.Position) PositionModel {
	return PositionModel{Name: p.Name(), X: p.X(), Y: p.Y()}
}

func newLinkModel(l *chart.Link) LinkModel {
	a, b := l.Endpoints()
	return LinkModel{From: a.Name(), To: b.Name(), Cost: l.Cost()}
}

func newLinkModels(links []*chart.Link) []LinkModel {
	out := make([]LinkModel, 0, len(links))
	for _, l := range links {
		out = append(out, newLinkModel(l))
	}

	return out
}
