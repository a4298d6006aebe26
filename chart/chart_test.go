// SPDX-License-Identifier: MIT

package chart_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns A(0,0), B(1,0), C(1,1) with A-B(5), B-C(2), A-C(10).
func buildTriangle(t *testing.T) *chart.Chart {
	t.Helper()
	c := chart.New(chart.WithImage("triangle.bmp"))
	for _, p := range []struct {
		name string
		x, y float64
	}{{"A", 0, 0}, {"B", 1, 0}, {"C", 1, 1}} {
		_, err := c.AddPosition(p.name, p.x, p.y)
		require.NoError(t, err)
	}
	for _, l := range []struct {
		from, to string
		cost     float64
	}{{"A", "B", 5}, {"B", "C", 2}, {"A", "C", 10}} {
		_, err := c.AddLink(l.from, l.to, l.cost)
		require.NoError(t, err)
	}

	return c
}

func TestChart_Build(t *testing.T) {
	c := buildTriangle(t)

	assert.Equal(t, "triangle.bmp", c.Image())
	assert.Equal(t, 3, c.PositionCount())
	assert.Equal(t, 3, c.LinkCount())
	assert.Equal(t, []string{"A", "B", "C"}, c.Names())

	a, err := c.Position("A")
	require.NoError(t, err)
	assert.Len(t, a.Links(), 2, "A is incident to A-B and A-C")
	assert.Equal(t, orb.Point{0, 0}, a.Point())
}

func TestChart_AddPositionErrors(t *testing.T) {
	c := chart.New()
	_, err := c.AddPosition("", 0, 0)
	assert.ErrorIs(t, err, chart.ErrEmptyName)

	for _, name := range []string{"New York", "tab\there", "trailing\n", "#comment"} {
		_, err = c.AddPosition(name, 0, 0)
		assert.ErrorIs(t, err, chart.ErrInvalidName, name)
	}
	assert.Zero(t, c.PositionCount(), "rejected names leave no position behind")

	_, err = c.AddPosition("A", 0, 0)
	require.NoError(t, err)
	_, err = c.AddPosition("A", 1, 1)
	assert.ErrorIs(t, err, chart.ErrDuplicatePosition)
}

func TestChart_AddLinkErrors(t *testing.T) {
	c := chart.New()
	_, _ = c.AddPosition("A", 0, 0)

	_, err := c.AddLink("A", "Z", 1)
	assert.ErrorIs(t, err, chart.ErrUnknownPosition)

	_, err = c.AddLink("A", "A", -1)
	assert.ErrorIs(t, err, chart.ErrNegativeCost)

	_, err = c.AddLink("A", "A", math.NaN())
	assert.ErrorIs(t, err, chart.ErrNegativeCost)

	assert.Zero(t, c.LinkCount(), "failed links must not be recorded")
}

func TestLink_OtherEnd(t *testing.T) {
	c := buildTriangle(t)
	a, _ := c.Position("A")
	b, _ := c.Position("B")
	ab := a.Links()[0]

	assert.Same(t, b, ab.OtherEnd(a))
	assert.Same(t, a, ab.OtherEnd(b))
	assert.True(t, ab.Touches(a))
	assert.Equal(t, 5.0, ab.Cost())

	first, second := ab.Endpoints()
	assert.Same(t, a, first)
	assert.Same(t, b, second)
}

func TestLink_SelfLoopRecordedOnce(t *testing.T) {
	c := chart.New()
	a, _ := c.AddPosition("A", 0, 0)
	loop, err := c.AddLink("A", "A", 3)
	require.NoError(t, err)

	assert.Len(t, a.Links(), 1)
	assert.Same(t, a, loop.OtherEnd(a))
}

func TestChart_PositionAt(t *testing.T) {
	c := buildTriangle(t)

	name, ok := c.PositionAt(orb.Point{1.05, 0.02}, chart.DefaultPickRadius)
	assert.True(t, ok)
	assert.Equal(t, "B", name)

	_, ok = c.PositionAt(orb.Point{0.5, 0.5}, chart.DefaultPickRadius)
	assert.False(t, ok, "a click between positions selects nothing")

	name, ok = c.PositionAt(orb.Point{0.5, 0}, 1)
	assert.True(t, ok)
	assert.Equal(t, "A", name, "overlapping hits resolve by name order")
}

func TestChart_Bound(t *testing.T) {
	c := buildTriangle(t)
	b := c.Bound()
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{1, 1}, b.Max)
}
