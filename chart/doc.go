// SPDX-License-Identifier: MIT

// Package chart defines the static graph model consumed by the routing algorithms:
// named Positions with planar coordinates, undirected weighted Links between them,
// and the Chart that owns both.
//
// A Chart is built once (AddPosition, then AddLink) and is treated as read-only by
// every algorithm afterwards. Because nothing mutates a built Chart, any number of
// goroutines may query it concurrently without locking.
//
// Errors:
//
//	ErrEmptyName          - position name is the empty string.
//	ErrDuplicatePosition  - a position with that name already exists.
//	ErrUnknownPosition    - a name does not refer to any position in the chart.
//	ErrNegativeCost       - link cost is negative or NaN.
//
// Reverse lookup:
//
//	PositionAt(pt, radius) maps a picked coordinate back to a position name; the
//	conventional radius is DefaultPickRadius, twice the on-screen NodeRadius.
package chart
