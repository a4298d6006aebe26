// SPDX-License-Identifier: MIT

// Package pqueue provides a generic min-priority queue backed by a binary heap.
//
// Overview:
//
//   - Elements are ordered by a caller-supplied three-way comparator:
//     cmp(a, b) < 0 if a orders before b, 0 if they are equal, > 0 otherwise.
//   - The heap lives in a slice that is conceptually 1-indexed (slot 0 is never read),
//     so parent(i) = i/2 and children(i) = 2i, 2i+1.
//   - Equal elements are not reordered; insertion order among ties is not preserved.
//   - Duplicates are accepted as-is; the queue never deduplicates.
//
// Complexity:
//
//   - Enqueue, DequeueMin: O(log N)
//   - Peek, Len, IsEmpty:  O(1)
//
// Errors (sentinel):
//
//   - ErrEmptyQueue: DequeueMin or Peek on an empty queue.
//
// Thread safety:
//
//   - A Queue is owned by a single goroutine. Synchronize externally if shared.
//
// Example:
//
//	q := pqueue.New(cmp.Compare[int])
//	q.Enqueue(3)
//	q.Enqueue(1)
//	v, _ := q.DequeueMin() // 1
package pqueue
