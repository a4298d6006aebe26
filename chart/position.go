// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Name returns the unique name of the position.
func (p *Position) Name() string { return p.name }

// Point returns the planar coordinates of the position.
func (p *Position) Point() orb.Point { return p.coords }

// X returns the horizontal coordinate.
func (p *Position) X() float64 { return p.coords[0] }

// Y returns the vertical coordinate.
func (p *Position) Y() float64 { return p.coords[1] }

// Links returns the links incident to p in the order they were added.
// The returned slice must not be modified.
func (p *Position) Links() []*Link { return p.links }

// String implements fmt.Stringer.
func (p *Position) String() string {
	return fmt.Sprintf("%s(%g, %g)", p.name, p.coords[0], p.coords[1])
}

// Cost returns the traversal cost of the link.
func (l *Link) Cost() float64 { return l.cost }

// Endpoints returns both endpoints in construction order.
func (l *Link) Endpoints() (*Position, *Position) { return l.ends[0], l.ends[1] }

// OtherEnd returns the endpoint of l that is not p. For a self-loop it returns p.
// If p is not an endpoint at all, the first endpoint is returned.
func (l *Link) OtherEnd(p *Position) *Position {
	if p == l.ends[0] {
		return l.ends[1]
	}

	return l.ends[0]
}

// Touches reports whether p is one of the endpoints of l.
func (l *Link) Touches(p *Position) bool { return p == l.ends[0] || p == l.ends[1] }

// String implements fmt.Stringer.
func (l *Link) String() string {
	return fmt.Sprintf("%s-%s(%g)", l.ends[0].name, l.ends[1].name, l.cost)
}
