// SPDX-License-Identifier: MIT

package shortest

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNilChart indicates that a nil *chart.Chart was passed.
	ErrNilChart = errors.New("shortest: chart is nil")

	// ErrNoPathExists indicates that the destination is unreachable from the start.
	ErrNoPathExists = errors.New("shortest: no path exists")
)

// Stats collects counters from one search.
type Stats struct {
	Dequeues   int // paths taken off the queue
	Enqueues   int // paths put on the queue, including the initial one
	Expansions int // times a terminal had its incident links examined
}

// Options configures FindShortestPath.
type Options struct {
	Context context.Context    // checked between dequeues
	Logger  logrus.FieldLogger // debug tracing sink
	Stats   *Stats             // optional counter sink
}

// Option represents a functional option for configuring FindShortestPath.
type Option func(*Options)

// WithContext makes the search return ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger sets the logger receiving debug traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes the search record its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.Stats = s }
}

// DefaultOptions returns options with a background context, a discarding logger
// and no stats sink.
func DefaultOptions() Options {
	return Options{
		Context: context.Background(),
		Logger:  discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
