// SPDX-License-Identifier: MIT

// Package charttest provides small chart fixtures for tests.
package charttest

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/chartpath/chart"
)

// MustBuild builds a chart from a compact description such as
//
//	"A B C D | A-B:1 B-C:2 C-D:3"
//
// Positions are listed before the bar and placed at (index, 0); links follow as
// from-to:cost. It panics on malformed input.
func MustBuild(desc string) *chart.Chart {
	names, links, _ := strings.Cut(desc, "|")
	c := chart.New()
	for i, name := range strings.Fields(names) {
		if _, err := c.AddPosition(name, float64(i), 0); err != nil {
			panic(err)
		}
	}
	for _, tok := range strings.Fields(links) {
		ends, costStr, ok := strings.Cut(tok, ":")
		if !ok {
			panic(fmt.Sprintf("charttest: link %q lacks a cost", tok))
		}
		from, to, ok := strings.Cut(ends, "-")
		if !ok {
			panic(fmt.Sprintf("charttest: link %q lacks endpoints", tok))
		}
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil {
			panic(err)
		}
		if _, err := c.AddLink(from, to, cost); err != nil {
			panic(err)
		}
	}

	return c
}

// Random builds a chart with n positions named V0..V(n-1) and m extra random
// links on top of a spanning chain when connected is true. Costs are integers
// in [1, 100] so that sums compare exactly. The generator is seeded with seed.
func Random(n, m int, connected bool, seed int64) *chart.Chart {
	r := rand.New(rand.NewSource(seed))
	c := chart.New()
	for i := 0; i < n; i++ {
		if _, err := c.AddPosition(fmt.Sprintf("V%d", i), r.Float64()*10, r.Float64()*10); err != nil {
			panic(err)
		}
	}
	if connected {
		for i := 1; i < n; i++ {
			j := r.Intn(i)
			mustLink(c, j, i, float64(1+r.Intn(100)))
		}
	}
	for k := 0; k < m && n > 1; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		mustLink(c, u, v, float64(1+r.Intn(100)))
	}

	return c
}

func mustLink(c *chart.Chart, u, v int, cost float64) {
	if _, err := c.AddLink(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), cost); err != nil {
		panic(err)
	}
}
