// SPDX-License-Identifier: MIT

package pqueue

import "errors"

// ErrEmptyQueue indicates a dequeue or peek on a queue holding no elements.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Comparator orders two elements: negative if a < b, zero if equal, positive if a > b.
type Comparator[T any] func(a, b T) int

// Queue is a min-priority queue of T ordered by a Comparator.
//
// heap[0] is a placeholder so that the root lives at index 1.
type Queue[T any] struct {
	heap []T
	cmp  Comparator[T]
}

// New creates an empty Queue ordered by cmp. cmp must not be nil.
func New[T any](cmp Comparator[T]) *Queue[T] {
	if cmp == nil {
		panic("pqueue: nil comparator")
	}

	return &Queue[T]{heap: make([]T, 1), cmp: cmp}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.heap) - 1 }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Enqueue adds value and restores the heap order by sifting it upward.
func (q *Queue[T]) Enqueue(value T) {
	q.heap = append(q.heap, value)
	q.siftUp(q.Len())
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.heap[1], nil
}

// DequeueMin removes and returns the minimum element.
// It returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) DequeueMin() (T, error) {
	var zero T
	n := q.Len()
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	// 1) A single element needs no rearrangement.
	if n == 1 {
		min := q.heap[1]
		q.heap[1] = zero
		q.heap = q.heap[:1]
		return min, nil
	}

	// 2) Move the last element into the root and shrink by one.
	min := q.heap[1]
	q.heap[1] = q.heap[n]
	q.heap[n] = zero // release the reference held by the dropped slot
	q.heap = q.heap[:n]

	// 3) Sift the new root downward.
	q.siftDown(1)

	return min, nil
}

// MustDequeueMin is like DequeueMin but panics on an empty queue.
// Use it only where the caller's control flow guarantees a non-empty queue.
func (q *Queue[T]) MustDequeueMin() T {
	v, err := q.DequeueMin()
	if err != nil {
		panic(err)
	}

	return v
}

// siftUp moves the element at i toward the root while it orders before its parent.
func (q *Queue[T]) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if q.cmp(q.heap[i], q.heap[parent]) >= 0 {
			return
		}
		q.heap[i], q.heap[parent] = q.heap[parent], q.heap[i]
		i = parent
	}
}

// siftDown moves the element at i toward the leaves while it orders after
// the smaller of its existing children.
func (q *Queue[T]) siftDown(i int) {
	n := q.Len()
	for {
		child := q.smallestChild(i, n)
		if child == 0 {
			return
		}
		if q.cmp(q.heap[i], q.heap[child]) <= 0 {
			return
		}
		q.heap[i], q.heap[child] = q.heap[child], q.heap[i]
		i = child
	}
}

// smallestChild returns the index of the smaller child of i, the only child
// if just one exists, or 0 if i is a leaf.
func (q *Queue[T]) smallestChild(i, n int) int {
	left := 2 * i
	if left > n {
		return 0
	}
	right := left + 1
	if right > n {
		return left
	}
	if q.cmp(q.heap[right], q.heap[left]) < 0 {
		return right
	}

	return left
}
