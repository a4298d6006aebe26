// SPDX-License-Identifier: MIT

package spanning

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/katalvlaran/chartpath/chart"
)

// notFound is the branch index returned when a position is in no branch.
const notFound = -1

// Branch is a set of positions known to be connected by accepted links.
type Branch struct {
	members *hashset.Set
}

func newBranch(ps ...*chart.Position) *Branch {
	b := &Branch{members: hashset.New()}
	for _, p := range ps {
		b.members.Add(p)
	}
	return b
}

// Contains reports whether p belongs to the branch.
func (b *Branch) Contains(p *chart.Position) bool { return b.members.Contains(p) }

// Len returns the number of positions in the branch.
func (b *Branch) Len() int { return b.members.Size() }

// Positions returns the members of the branch in no particular order.
func (b *Branch) Positions() []*chart.Position {
	vals := b.members.Values()
	out := make([]*chart.Position, len(vals))
	for i, v := range vals {
		out[i] = v.(*chart.Position)
	}
	return out
}

func (b *Branch) absorb(other *Branch) {
	b.members.Add(other.members.Values()...)
}

// Forest is an unordered collection of disjoint branches.
type Forest struct {
	branches []*Branch
}

// NewForest returns an empty forest.
func NewForest() *Forest { return &Forest{} }

// Len returns the number of branches.
func (f *Forest) Len() int { return len(f.branches) }

// Branches returns the current branches. The slice must not be modified.
func (f *Forest) Branches() []*Branch { return f.branches }

// Find returns the index of the branch containing p, or -1.
func (f *Forest) Find(p *chart.Position) int {
	for i, b := range f.branches {
		if b.Contains(p) {
			return i
		}
	}
	return notFound
}

// Include records that a and b are joined by a candidate link and reports
// whether the link is accepted. A link whose endpoints already share a branch
// is rejected and leaves the forest unchanged, as is a self-loop (a == b).
func (f *Forest) Include(a, b *chart.Position) bool {
	if a == b {
		return false
	}
	ia, ib := f.Find(a), f.Find(b)

	switch {
	case ia != notFound && ib != notFound && ia != ib:
		// Merge B's branch into A's and drop the redundant one.
		f.branches[ia].absorb(f.branches[ib])
		f.branches = append(f.branches[:ib], f.branches[ib+1:]...)
		return true
	case ia != notFound && ia == ib:
		return false
	case ia == notFound && ib == notFound:
		f.branches = append(f.branches, newBranch(a, b))
		return true
	case ia != notFound:
		f.branches[ia].members.Add(b)
		return true
	default:
		f.branches[ib].members.Add(a)
		return true
	}
}
