// SPDX-License-Identifier: MIT

package spanning_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/chart/charttest"
	"github.com/katalvlaran/chartpath/spanning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []spanning.Strategy{spanning.StrategyScan, spanning.StrategyDisjointSet}

// assertAcyclic replays accepted links against a fresh forest: every link must be
// accepted again, otherwise it closed a cycle at acceptance time.
func assertAcyclic(t *testing.T, links []*chart.Link) {
	t.Helper()
	f := spanning.NewForest()
	for _, l := range links {
		a, b := l.Endpoints()
		assert.True(t, f.Include(a, b), "link %v closes a cycle", l)
	}
}

// components counts connected components with a simple flood fill.
func components(c *chart.Chart) int {
	seen := make(map[*chart.Position]bool)
	count := 0
	for _, p := range c.Positions() {
		if seen[p] {
			continue
		}
		count++
		stack := []*chart.Position{p}
		seen[p] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, l := range cur.Links() {
				if n := l.OtherEnd(cur); !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return count
}

func TestBuild_FourPositionTree(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			c := charttest.MustBuild("A B C D | A-B:1 B-C:2 C-D:3 A-C:2")

			links, err := spanning.BuildMinimumSpanningForest(c, spanning.WithStrategy(s))
			require.NoError(t, err)
			assert.Len(t, links, 3)
			assert.Equal(t, 6.0, spanning.TotalCost(links))
			assertAcyclic(t, links)
			assert.Equal(t, 1.0, links[0].Cost(), "acceptance follows ascending cost")
			assert.Equal(t, 3.0, links[2].Cost())
		})
	}
}

func TestBuild_TwoComponents(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			// Sizes m=3 and n=4.
			c := charttest.MustBuild("A B C W X Y Z | A-B:1 B-C:1 A-C:1 W-X:4 X-Y:1 Y-Z:2 W-Z:1 W-Y:9")

			links, err := spanning.BuildMinimumSpanningForest(c, spanning.WithStrategy(s))
			require.NoError(t, err)
			assert.Len(t, links, (3-1)+(4-1))
			assertAcyclic(t, links)
			assert.Equal(t, 2.0+4.0, spanning.TotalCost(links))
		})
	}
}

func TestBuild_EmptyAndTrivial(t *testing.T) {
	links, err := spanning.BuildMinimumSpanningForest(chart.New())
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.NotNil(t, links)

	links, err = spanning.BuildMinimumSpanningForest(charttest.MustBuild("A | A-A:2"))
	require.NoError(t, err)
	assert.Empty(t, links, "self-loops are never part of a forest")

	_, err = spanning.BuildMinimumSpanningForest(nil)
	assert.ErrorIs(t, err, spanning.ErrNilChart)

	_, err = spanning.BuildMinimumSpanningForest(chart.New(), spanning.WithStrategy(spanning.Strategy(42)))
	assert.ErrorIs(t, err, spanning.ErrUnknownStrategy)
}

func TestBuild_StrategiesAgree(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		c := charttest.Random(40, 80, seed%2 == 0, seed)

		scan, err := spanning.BuildMinimumSpanningForest(c, spanning.WithStrategy(spanning.StrategyScan))
		require.NoError(t, err)
		dsu, err := spanning.BuildMinimumSpanningForest(c, spanning.WithStrategy(spanning.StrategyDisjointSet))
		require.NoError(t, err)

		assert.Equal(t, scan, dsu, "seed %d: both strategies see the same queue order", seed)
		assert.Len(t, scan, c.PositionCount()-components(c), "seed %d", seed)
		assertAcyclic(t, scan)
	}
}

func TestBuild_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := spanning.BuildMinimumSpanningForest(charttest.MustBuild("A B | A-B:1"), spanning.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForest_IncludeCases(t *testing.T) {
	c := charttest.MustBuild("A B C D E")
	pos := func(name string) *chart.Position {
		p, err := c.Position(name)
		require.NoError(t, err)
		return p
	}
	f := spanning.NewForest()

	// Neither endpoint known: new branch.
	assert.True(t, f.Include(pos("A"), pos("B")))
	assert.Equal(t, 1, f.Len())

	// Second disjoint branch.
	assert.True(t, f.Include(pos("D"), pos("E")))
	assert.Equal(t, 2, f.Len())

	// Exactly one known: joins that branch.
	assert.True(t, f.Include(pos("C"), pos("B")))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 0, f.Find(pos("C")))

	// Same branch: rejected.
	assert.False(t, f.Include(pos("A"), pos("C")))

	// Different branches: merged into one.
	assert.True(t, f.Include(pos("E"), pos("A")))
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 5, f.Branches()[0].Len())
	assert.Len(t, f.Branches()[0].Positions(), 5)
	assert.Equal(t, -1, spanning.NewForest().Find(pos("A")))
}

func TestForest_IncludeSelfLoop(t *testing.T) {
	c := charttest.MustBuild("A B")
	a, err := c.Position("A")
	require.NoError(t, err)
	b, err := c.Position("B")
	require.NoError(t, err)

	f := spanning.NewForest()
	assert.False(t, f.Include(a, a), "self-loop on an unknown position")
	assert.Zero(t, f.Len())
	assert.Equal(t, -1, f.Find(a))

	require.True(t, f.Include(a, b))
	assert.False(t, f.Include(b, b), "self-loop inside a branch")
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, f.Branches()[0].Len())
}

func TestBuild_SelfLoopsIgnored(t *testing.T) {
	for _, st := range []spanning.Strategy{spanning.StrategyScan, spanning.StrategyDisjointSet} {
		c := charttest.MustBuild("A B | A-A:0 A-B:4 B-B:1")
		links, err := spanning.BuildMinimumSpanningForest(c, spanning.WithStrategy(st))
		require.NoError(t, err, st)
		require.Len(t, links, 1, st)
		assert.Equal(t, "A-B(4)", links[0].String(), st)
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := spanning.ParseStrategy("dsu")
	require.NoError(t, err)
	assert.Equal(t, spanning.StrategyDisjointSet, s)

	s, err = spanning.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, spanning.StrategyScan, s)

	_, err = spanning.ParseStrategy("prim")
	assert.ErrorIs(t, err, spanning.ErrUnknownStrategy)
}
