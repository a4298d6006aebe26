// SPDX-License-Identifier: MIT

package shortest

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/path"
	"github.com/katalvlaran/chartpath/pqueue"
	"github.com/sirupsen/logrus"
)

// FindShortestPath returns a minimum-cost path from the position named start to
// the position named end.
//
// Preconditions and validation (in order):
//  1. c must be non-nil (ErrNilChart).
//  2. start and end must exist in c (chart.ErrUnknownPosition).
//
// Returns ErrNoPathExists if end is unreachable, or the context error wrapped
// if the search was cancelled.
func FindShortestPath(c *chart.Chart, start, end string, opts ...Option) (*path.Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if c == nil {
		return nil, ErrNilChart
	}
	from, err := c.Position(start)
	if err != nil {
		return nil, err
	}
	to, err := c.Position(end)
	if err != nil {
		return nil, err
	}

	// 3) Run the search.
	r := &runner{
		options:  cfg,
		dest:     to,
		expanded: make(map[string]struct{}, c.PositionCount()),
		queue:    pqueue.New(byCost),
		stats:    cfg.Stats,
		log:      cfg.Logger.WithFields(logrus.Fields{"from": start, "to": end}),
	}
	if r.stats == nil {
		r.stats = &Stats{}
	}
	*r.stats = Stats{}

	return r.run(from)
}

// byCost orders paths by ascending total cost.
func byCost(a, b *path.Path) int { return cmp.Compare(a.TotalCost(), b.TotalCost()) }

// runner holds the mutable state of a single search.
type runner struct {
	options  Options
	dest     *chart.Position
	expanded map[string]struct{}
	queue    *pqueue.Queue[*path.Path]
	stats    *Stats
	log      logrus.FieldLogger
}

// run drives the search loop until the destination is dequeued or the queue empties.
func (r *runner) run(origin *chart.Position) (*path.Path, error) {
	r.enqueue(path.New(origin))

	ctx := r.options.Context
	for !r.queue.IsEmpty() {
		// 1) Honour cancellation between dequeues.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("shortest: search aborted: %w", err)
		}

		// 2) Take the globally cheapest pending path.
		current := r.queue.MustDequeueMin()
		r.stats.Dequeues++
		terminal := current.Terminal()

		// 3) The first time the destination comes off the queue, it is optimal.
		if terminal == r.dest {
			r.log.WithField("cost", current.TotalCost()).Debug("destination reached")
			return current, nil
		}

		// 4) Mark and expand.
		r.expand(current)
	}

	return nil, fmt.Errorf("%w: %q to %q", ErrNoPathExists, origin.Name(), r.dest.Name())
}

// expand marks the terminal of p as expanded and enqueues one extension of p for
// every incident link whose far end has not been expanded yet.
func (r *runner) expand(p *path.Path) {
	terminal := p.Terminal()
	r.expanded[terminal.Name()] = struct{}{}
	r.stats.Expansions++
	r.log.WithFields(logrus.Fields{
		"position": terminal.Name(),
		"cost":     p.TotalCost(),
	}).Debug("expanding")

	for _, l := range terminal.Links() {
		neighbor := l.OtherEnd(terminal)
		if _, done := r.expanded[neighbor.Name()]; done {
			continue
		}
		r.enqueue(p.Extend(l))
	}
}

func (r *runner) enqueue(p *path.Path) {
	r.queue.Enqueue(p)
	r.stats.Enqueues++
}
