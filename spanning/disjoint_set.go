// SPDX-License-Identifier: MIT

package spanning

import "github.com/katalvlaran/chartpath/chart"

// disjointSet is an index-based union-find with union by rank and path compression.
type disjointSet struct {
	index  map[*chart.Position]int
	parent []int
	rank   []int
}

func newDisjointSet(ps []*chart.Position) *disjointSet {
	d := &disjointSet{
		index:  make(map[*chart.Position]int, len(ps)),
		parent: make([]int, len(ps)),
		rank:   make([]int, len(ps)),
	}
	for i, p := range ps {
		d.index[p] = i
		d.parent[i] = i
	}
	return d
}

// find walks to the root of i, halving the path on the way.
func (d *disjointSet) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// Include merges the components of a and b and reports whether they were distinct.
func (d *disjointSet) Include(a, b *chart.Position) bool {
	if a == b {
		return false
	}
	ra, rb := d.find(d.index[a]), d.find(d.index[b])
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	return true
}
