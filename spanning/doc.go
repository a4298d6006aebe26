// SPDX-License-Identifier: MIT

// Package spanning builds a minimum spanning forest of a chart with Kruskal's algorithm.
//
// What & Why
//
//   - A spanning forest keeps the cheapest set of links that still connects every
//     pair of positions that the full chart connects. On a connected chart it is a
//     minimum spanning tree; on a chart with k components it is k trees.
//
// Algorithm
//
//   - Every link is put on a min-priority queue ordered by cost.
//   - A Forest of disjoint Branches (sets of positions already joined by accepted
//     links) starts empty.
//   - The cheapest link L(A, B) is taken repeatedly:
//   - A and B in different branches: merge B's branch into A's, accept L.
//   - A and B in the same branch:     reject L, it would close a cycle.
//   - neither in any branch:         start the branch {A, B}, accept L.
//   - exactly one in a branch:       add the other endpoint there, accept L.
//   - Self-loops are never accepted.
//
// Strategies
//
//   - StrategyScan (default): branch lookup scans the forest, O(branches) per lookup.
//   - StrategyDisjointSet:    an index-based union-find with rank and path
//     compression, near O(1) per lookup.
//
// Both strategies see links in the same queue order and accept the same links.
//
// Ties among equal-cost links are broken by queue order. The result is a valid
// minimum spanning forest, though not necessarily the only one.
//
// Errors
//
//   - ErrNilChart: a nil *chart.Chart was passed.
//   - ErrUnknownStrategy: WithStrategy received an unsupported value.
package spanning
