// SPDX-License-Identifier: MIT

package path_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLine returns P0-P1-...-P(n-1) with random costs and the link slice.
func buildLine(t *testing.T, n int, r *rand.Rand) (*chart.Chart, []*chart.Link) {
	t.Helper()
	c := chart.New()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = string(rune('A' + i))
		_, err := c.AddPosition(names[i], float64(i), 0)
		require.NoError(t, err)
	}
	links := make([]*chart.Link, 0, n-1)
	for i := 1; i < n; i++ {
		// Alternate construction order so OtherEnd is exercised in both directions.
		from, to := names[i-1], names[i]
		if i%2 == 0 {
			from, to = to, from
		}
		l, err := c.AddLink(from, to, float64(r.Intn(20)))
		require.NoError(t, err)
		links = append(links, l)
	}

	return c, links
}

func sumCosts(p *path.Path) float64 {
	var total float64
	for _, l := range p.Links() {
		total += l.Cost()
	}
	return total
}

func TestPath_Empty(t *testing.T) {
	c, _ := buildLine(t, 2, rand.New(rand.NewSource(1)))
	a, _ := c.Position("A")
	p := path.New(a)

	assert.Same(t, a, p.Origin())
	assert.Same(t, a, p.Terminal())
	assert.Zero(t, p.Len())
	assert.Zero(t, p.TotalCost())
	assert.Nil(t, p.Pop(), "pop on an empty path is a no-op")
	assert.Equal(t, "A (0)", p.String())
}

// TestPath_AppendPopInverse appends k links and pops them back, checking that the
// terminal and cost retrace their earlier values exactly.
func TestPath_AppendPopInverse(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	c, links := buildLine(t, 8, r)
	a, _ := c.Position("A")
	p := path.New(a)

	terminals := []*chart.Position{p.Terminal()}
	costs := []float64{p.TotalCost()}
	for _, l := range links {
		p.Append(l)
		assert.Equal(t, sumCosts(p), p.TotalCost())
		terminals = append(terminals, p.Terminal())
		costs = append(costs, p.TotalCost())
	}
	h, _ := c.Position("H")
	assert.Same(t, h, p.Terminal())

	for i := len(links) - 1; i >= 0; i-- {
		popped := p.Pop()
		assert.Same(t, links[i], popped)
		assert.Same(t, terminals[i], p.Terminal())
		assert.Equal(t, costs[i], p.TotalCost())
		assert.Equal(t, sumCosts(p), p.TotalCost())
	}
	assert.Zero(t, p.Len())
}

func TestPath_CloneIsIndependent(t *testing.T) {
	c, links := buildLine(t, 4, rand.New(rand.NewSource(5)))
	a, _ := c.Position("A")
	p := path.New(a)
	p.Append(links[0])

	q := p.Clone()
	q.Append(links[1])
	p.Pop()

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 2, q.Len())
	assert.Same(t, links[0], q.At(0))

	ext := q.Extend(links[2])
	assert.Equal(t, 2, q.Len(), "Extend leaves the receiver untouched")
	assert.Equal(t, 3, ext.Len())
	d, _ := c.Position("D")
	assert.Same(t, d, ext.Terminal())
}

func TestPath_Positions(t *testing.T) {
	c := chart.New()
	_, _ = c.AddPosition("A", 0, 0)
	_, _ = c.AddPosition("B", 1, 0)
	_, _ = c.AddPosition("C", 2, 0)
	ab, _ := c.AddLink("B", "A", 5) // reversed construction order on purpose
	bc, _ := c.AddLink("B", "C", 2)

	a, _ := c.Position("A")
	p := path.New(a)
	p.Append(ab)
	p.Append(bc)

	names := make([]string, 0, 3)
	for _, pos := range p.Positions() {
		names = append(names, pos.Name())
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
	assert.Equal(t, "A -> B -> C (7)", p.String())
}

// TestPath_PopRestoresFractionalCost checks that popping returns the exact
// earlier total even when the costs are not representable in binary.
func TestPath_PopRestoresFractionalCost(t *testing.T) {
	c := chart.New()
	for i, name := range []string{"A", "B", "C", "D"} {
		_, err := c.AddPosition(name, float64(i), 0)
		require.NoError(t, err)
	}
	ab, _ := c.AddLink("A", "B", 0.1)
	bc, _ := c.AddLink("B", "C", 0.2)
	cd, _ := c.AddLink("C", "D", 0.7)

	a, _ := c.Position("A")
	p := path.New(a)
	p.Append(ab)
	before := p.TotalCost()
	p.Append(bc)
	p.Append(cd)
	assert.Equal(t, sumCosts(p), p.TotalCost())

	p.Pop()
	assert.Equal(t, sumCosts(p), p.TotalCost())
	p.Pop()
	assert.Equal(t, before, p.TotalCost())
	assert.Equal(t, 0.1, p.TotalCost())

	q := p.Extend(bc)
	q.Pop()
	assert.Equal(t, 0.1, q.TotalCost())
}
