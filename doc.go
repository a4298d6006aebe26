// SPDX-License-Identifier: MIT

// Package chartpath finds cheapest routes and minimum spanning forests on a
// chart of named positions joined by weighted links.
//
// What is inside:
//
//	pqueue/     generic binary min-heap with a three-way comparator
//	chart/      Position, Link and Chart; reverse lookup of a point to a position
//	path/       growing link sequence with terminal and running cost
//	shortest/   best-first search over whole paths (FindShortestPath)
//	spanning/   Kruskal over a scan-based forest or a disjoint set
//	chartio/    text and YAML chart feeds
//	render/     Renderer interface, text and GeoJSON renderers
//	server/     HTTP API on gorilla/mux
//	config/     YAML settings with defaults
//	cmd/chartpath  the command line
//
// Quick start:
//
//	c, _ := chartio.ReadFile("usa.txt")
//	p, _ := shortest.FindShortestPath(c, "Seattle", "Atlanta")
//	fmt.Println(p) // Seattle -> ... -> Atlanta (cost)
//
//	links, _ := spanning.BuildMinimumSpanningForest(c)
//	fmt.Println(spanning.TotalCost(links))
//
// Charts are built once and never mutated by the algorithms, so one chart may
// serve any number of concurrent searches.
package chartpath
