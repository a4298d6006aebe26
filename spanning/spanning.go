// SPDX-License-Identifier: MIT

package spanning

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/pqueue"
	"github.com/sirupsen/logrus"
)

// includer is the membership structure driving acceptance decisions.
type includer interface {
	Include(a, b *chart.Position) bool
}

// BuildMinimumSpanningForest returns the links of a minimum spanning forest of c
// in the order they were accepted.
//
// Steps:
//  1. Validate c and the strategy.
//  2. Enqueue every link into a queue ordered by ascending cost.
//  3. Dequeue links until the queue is empty, accepting each one that joins two
//     positions not yet known to be connected.
//
// An empty chart yields an empty, non-nil result.
func BuildMinimumSpanningForest(c *chart.Chart, opts ...Option) ([]*chart.Link, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if c == nil {
		return nil, ErrNilChart
	}

	var members includer
	switch cfg.Strategy {
	case StrategyScan:
		members = NewForest()
	case StrategyDisjointSet:
		members = newDisjointSet(c.Positions())
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}

	// 2) Order every link by cost.
	queue := pqueue.New(byCost)
	for _, l := range c.Links() {
		queue.Enqueue(l)
	}

	// 3) Grow the forest.
	log := cfg.Logger.WithField("strategy", cfg.Strategy.String())
	accepted := make([]*chart.Link, 0, c.PositionCount())
	for !queue.IsEmpty() {
		if err := cfg.Context.Err(); err != nil {
			return nil, fmt.Errorf("spanning: build aborted: %w", err)
		}

		l := queue.MustDequeueMin()
		a, b := l.Endpoints()
		if a == b {
			log.WithField("link", l.String()).Debug("self-loop skipped")
			continue
		}
		if !members.Include(a, b) {
			log.WithField("link", l.String()).Debug("rejected: closes a cycle")
			continue
		}
		log.WithField("link", l.String()).Debug("accepted")
		accepted = append(accepted, l)
	}

	log.WithFields(logrus.Fields{
		"links": len(accepted),
		"cost":  TotalCost(accepted),
	}).Debug("forest complete")

	return accepted, nil
}

// TotalCost sums the costs of links.
func TotalCost(links []*chart.Link) float64 {
	var total float64
	for _, l := range links {
		total += l.Cost()
	}
	return total
}

// byCost orders links by ascending cost.
func byCost(a, b *chart.Link) int { return cmp.Compare(a.Cost(), b.Cost()) }
