// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Image returns the backdrop image name, or "" if none was set.
func (c *Chart) Image() string { return c.image }

// AddPosition registers a new position named name at (x, y).
//
// Errors:
//   - ErrEmptyName if name is "".
//   - ErrInvalidName if name contains whitespace or starts with '#'.
//   - ErrDuplicatePosition if the name is already taken.
func (c *Chart) AddPosition(name string, x, y float64) (*Position, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := c.positions[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePosition, name)
	}

	p := &Position{name: name, coords: orb.Point{x, y}}
	c.positions[name] = p

	return p, nil
}

// AddLink connects the positions named from and to with the given cost and
// records the link on both endpoints.
//
// Errors:
//   - ErrUnknownPosition if either name is absent.
//   - ErrNegativeCost if cost < 0 or cost is NaN.
func (c *Chart) AddLink(from, to string, cost float64) (*Link, error) {
	if cost < 0 || math.IsNaN(cost) {
		return nil, fmt.Errorf("%w: %s-%s cost=%g", ErrNegativeCost, from, to, cost)
	}
	a, err := c.Position(from)
	if err != nil {
		return nil, err
	}
	b, err := c.Position(to)
	if err != nil {
		return nil, err
	}

	l := &Link{ends: [2]*Position{a, b}, cost: cost}
	c.links = append(c.links, l)
	a.links = append(a.links, l)
	if b != a {
		b.links = append(b.links, l)
	}

	return l, nil
}

// Position returns the position named name, or ErrUnknownPosition.
func (c *Chart) Position(name string) (*Position, error) {
	p, ok := c.positions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPosition, name)
	}

	return p, nil
}

// HasPosition reports whether a position named name exists.
func (c *Chart) HasPosition(name string) bool {
	_, ok := c.positions[name]
	return ok
}

// Names returns all position names sorted ascending.
func (c *Chart) Names() []string {
	names := make([]string, 0, len(c.positions))
	for name := range c.positions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Positions returns all positions sorted by name.
func (c *Chart) Positions() []*Position {
	names := c.Names()
	out := make([]*Position, len(names))
	for i, name := range names {
		out[i] = c.positions[name]
	}

	return out
}

// Links returns every link in construction order. The slice must not be modified.
func (c *Chart) Links() []*Link { return c.links }

// PositionCount returns the number of positions.
func (c *Chart) PositionCount() int { return len(c.positions) }

// LinkCount returns the number of links.
func (c *Chart) LinkCount() int { return len(c.links) }

// PositionAt returns the name of a position whose planar distance to pt is at
// most radius. Positions are scanned in name order, so overlapping hits resolve
// to the lexicographically smallest name.
func (c *Chart) PositionAt(pt orb.Point, radius float64) (string, bool) {
	for _, p := range c.Positions() {
		if planar.Distance(pt, p.coords) <= radius {
			return p.name, true
		}
	}

	return "", false
}

// Bound returns the bounding box of all positions.
func (c *Chart) Bound() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(c.positions))
	for _, p := range c.positions {
		mp = append(mp, p.coords)
	}

	return mp.Bound()
}

// validName reports whether name survives a whitespace-separated record with
// '#' comments.
func validName(name string) bool {
	return name[0] != '#' && !strings.ContainsFunc(name, unicode.IsSpace)
}
