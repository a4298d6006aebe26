// SPDX-License-Identifier: MIT

package pqueue_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/chartpath/pqueue"
)

// ExampleQueue shows the queue yielding elements in ascending order.
func ExampleQueue() {
	q := pqueue.New(cmp.Compare[int])
	for _, v := range []int{4, 1, 3, 2} {
		q.Enqueue(v)
	}
	for !q.IsEmpty() {
		v, _ := q.DequeueMin()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 3 4
}
