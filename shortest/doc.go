// SPDX-License-Identifier: MIT

// Package shortest finds the lowest-cost route between two positions of a chart.
//
// Overview:
//
//   - The search is uniform-cost (best-first) over growing paths: a min-priority
//     queue holds whole candidate paths ordered by total cost, and the cheapest one
//     is always expanded next.
//   - A set of "expanded" position names stops the search from extending a path
//     back into a position whose incident links were already examined.
//   - The first dequeued path whose terminal is the destination is returned. With
//     non-negative costs this path is minimal; it is Dijkstra's algorithm with lazy,
//     non-deduplicated queue entries instead of per-node relaxation.
//
// Behavior notes:
//
//   - A position can be expanded more than once if several paths reach it before it
//     is first marked. This costs work, never correctness or termination.
//   - Requesting a route from a position to itself yields an empty path of cost 0.
//   - Ties among equal-cost paths are broken arbitrarily; repeated runs on the same
//     chart agree on cost, not necessarily on the link sequence.
//
// Error handling (sentinel errors):
//
//   - chart.ErrUnknownPosition: start or end is not in the chart.
//   - ErrNoPathExists:          the queue ran dry before reaching the destination.
//   - ErrNilChart:              a nil *chart.Chart was passed.
//
// Options:
//
//	WithContext(ctx)   - abort between dequeues once ctx is done.
//	WithLogger(l)      - trace dequeues and expansions at debug level.
//	WithStats(&stats)  - receive queue and expansion counters.
//
// Complexity:
//
//   - Time:  O(E log E) queue operations, each enqueue copying a path of length ≤ V.
//   - Space: O(E · V) worst case for queued path copies.
package shortest
