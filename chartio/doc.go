// SPDX-License-Identifier: MIT

// Package chartio reads and writes chart feeds.
//
// Text format:
//
//	usa.bmp            # optional backdrop image name
//	NODES
//	Seattle 0.9 5.1    # name x y
//	Portland 0.8 4.6
//	ARCS
//	Seattle Portland 174   # from to cost
//
// Fields are whitespace separated; blank lines and lines starting with '#' are
// skipped. Position records run until the ARCS sentinel, link records until end
// of input. Any malformed record aborts the whole load; no partial chart is
// returned.
//
// YAML format:
//
//	image: usa.bmp
//	positions:
//	  - {name: Seattle, x: 0.9, y: 5.1}
//	links:
//	  - {from: Seattle, to: Portland, cost: 174}
package chartio
