// SPDX-License-Identifier: MIT

// Package path models a route through a chart as a chain of links.
//
// A Path starts at an origin position and tracks its current terminal. Append
// follows a link away from the terminal; Pop undoes the last Append exactly, so
// the two can be used for backtracking. The total cost is maintained as links are
// appended and popped and always equals the sum of the link costs.
package path

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chartpath/chart"
)

// Path is an ordered, cost-accumulating chain of links.
type Path struct {
	origin   *chart.Position
	terminal *chart.Position
	links    []*chart.Link
	costs    []float64 // costs[i] is the total after links[i]
}

// New returns an empty path that starts and ends at origin.
func New(origin *chart.Position) *Path {
	return &Path{origin: origin, terminal: origin}
}

// Origin returns the position the path starts from.
func (p *Path) Origin() *chart.Position { return p.origin }

// Terminal returns the position the path currently ends at.
func (p *Path) Terminal() *chart.Position { return p.terminal }

// Len returns the number of links in the path.
func (p *Path) Len() int { return len(p.links) }

// At returns the i-th link of the path.
func (p *Path) At(i int) *chart.Link { return p.links[i] }

// Links returns the links in order. The slice must not be modified.
func (p *Path) Links() []*chart.Link { return p.links }

// TotalCost returns the sum of the costs of all links in the path.
func (p *Path) TotalCost() float64 {
	if len(p.costs) == 0 {
		return 0
	}

	return p.costs[len(p.costs)-1]
}

// Append extends the path by l. l must touch the current terminal; the new
// terminal is the far end of l.
func (p *Path) Append(l *chart.Link) {
	p.links = append(p.links, l)
	p.terminal = l.OtherEnd(p.terminal)
	p.costs = append(p.costs, p.TotalCost()+l.Cost())
}

// Pop removes the last link and restores the terminal it was appended from.
// Pop on an empty path is a no-op and returns nil.
func (p *Path) Pop() *chart.Link {
	n := len(p.links)
	if n == 0 {
		return nil
	}
	l := p.links[n-1]
	p.links[n-1] = nil
	p.links = p.links[:n-1]
	p.costs = p.costs[:n-1]
	p.terminal = l.OtherEnd(p.terminal)

	return l
}

// Clone returns an independent copy; appending to either never affects the other.
func (p *Path) Clone() *Path {
	links := make([]*chart.Link, len(p.links))
	copy(links, p.links)
	costs := make([]float64, len(p.costs))
	copy(costs, p.costs)

	return &Path{origin: p.origin, terminal: p.terminal, links: links, costs: costs}
}

// Extend returns a copy of p with l appended, leaving p untouched.
func (p *Path) Extend(l *chart.Link) *Path {
	next := p.Clone()
	next.Append(l)
	return next
}

// Positions returns the visited positions from origin to terminal.
func (p *Path) Positions() []*chart.Position {
	out := make([]*chart.Position, 0, len(p.links)+1)
	cur := p.origin
	out = append(out, cur)
	for _, l := range p.links {
		cur = l.OtherEnd(cur)
		out = append(out, cur)
	}

	return out
}

// String renders the path as "A -> B -> C (7)".
func (p *Path) String() string {
	names := make([]string, 0, len(p.links)+1)
	for _, pos := range p.Positions() {
		names = append(names, pos.Name())
	}

	return fmt.Sprintf("%s (%g)", strings.Join(names, " -> "), p.TotalCost())
}
