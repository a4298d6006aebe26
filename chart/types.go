// SPDX-License-Identifier: MIT

package chart

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for chart construction and lookup.
var (
	// ErrEmptyName indicates that a position name is the empty string.
	ErrEmptyName = errors.New("chart: position name is empty")

	// ErrInvalidName indicates a position name that is not a single token:
	// it contains whitespace or starts with '#'.
	ErrInvalidName = errors.New("chart: position name must be a single token not starting with '#'")

	// ErrDuplicatePosition indicates a second position with an existing name.
	ErrDuplicatePosition = errors.New("chart: duplicate position")

	// ErrUnknownPosition indicates a name not present in the chart.
	ErrUnknownPosition = errors.New("chart: unknown position")

	// ErrNegativeCost indicates a link cost below zero (or NaN).
	ErrNegativeCost = errors.New("chart: link cost must be non-negative")
)

const (
	// NodeRadius is the on-screen radius of a drawn position.
	NodeRadius = 0.05

	// DefaultPickRadius is the distance within which a picked point selects a position.
	DefaultPickRadius = 2 * NodeRadius
)

// Position is a named, coordinate-bearing node of a Chart.
//
// Name and coordinates are fixed at creation; the incident link list only grows
// while the Chart is being built.
type Position struct {
	name   string
	coords orb.Point
	links  []*Link
}

// Link is an undirected weighted edge between two positions.
//
// The endpoints are kept in construction order, which carries no direction.
type Link struct {
	ends [2]*Position
	cost float64
}

// Chart owns every Position and Link of a map.
type Chart struct {
	image     string
	positions map[string]*Position
	links     []*Link
}

// Option configures a Chart at construction time.
type Option func(*Chart)

// WithImage records the name of the backdrop image the chart is drawn over.
func WithImage(name string) Option {
	return func(c *Chart) { c.image = name }
}

// New creates an empty Chart.
func New(opts ...Option) *Chart {
	c := &Chart{positions: make(map[string]*Position)}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
