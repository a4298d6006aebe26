// SPDX-License-Identifier: MIT

package pqueue_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/chartpath/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_EmptyDequeueFails(t *testing.T) {
	q := pqueue.New(cmp.Compare[int])
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())

	_, err := q.DequeueMin()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

	_, err = q.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

	assert.PanicsWithError(t, pqueue.ErrEmptyQueue.Error(), func() { q.MustDequeueMin() })
}

func TestQueue_NilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() { pqueue.New[int](nil) })
}

func TestQueue_SingleElement(t *testing.T) {
	q := pqueue.New(cmp.Compare[int])
	q.Enqueue(42)

	top, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 42, top)

	v, err := q.DequeueMin()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, q.IsEmpty())
}

func TestQueue_DrainsInOrder(t *testing.T) {
	q := pqueue.New(cmp.Compare[int])
	in := []int{5, 3, 8, 1, 9, 2, 7, 3, 3, 0}
	for _, v := range in {
		q.Enqueue(v)
	}
	require.Equal(t, len(in), q.Len())

	got := make([]int, 0, len(in))
	for !q.IsEmpty() {
		got = append(got, q.MustDequeueMin())
	}

	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, got, "duplicates must all come back out, in ascending order")
}

// TestQueue_InterleavedAgainstReference checks that every DequeueMin returns an
// element no greater than anything still queued, and that Len tracks N-M.
func TestQueue_InterleavedAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := pqueue.New(cmp.Compare[float64])
	var pending []float64
	enq, deq := 0, 0

	for step := 0; step < 2000; step++ {
		if len(pending) == 0 || r.Intn(3) > 0 {
			v := r.Float64() * 100
			q.Enqueue(v)
			pending = append(pending, v)
			enq++
		} else {
			v, err := q.DequeueMin()
			require.NoError(t, err)
			deq++
			for _, rest := range pending {
				require.LessOrEqual(t, v, rest)
			}
			idx := slices.Index(pending, v)
			require.GreaterOrEqual(t, idx, 0, "dequeued value %v was never enqueued", v)
			pending = slices.Delete(pending, idx, idx+1)
		}
		require.Equal(t, enq-deq, q.Len())
	}
}

func TestQueue_CustomComparator(t *testing.T) {
	type job struct {
		name string
		cost float64
	}
	byCost := func(a, b job) int { return cmp.Compare(a.cost, b.cost) }

	q := pqueue.New(byCost)
	q.Enqueue(job{"slow", 10})
	q.Enqueue(job{"fast", 1})
	q.Enqueue(job{"mid", 5})

	assert.Equal(t, "fast", q.MustDequeueMin().name)
	assert.Equal(t, "mid", q.MustDequeueMin().name)
	assert.Equal(t, "slow", q.MustDequeueMin().name)
}
