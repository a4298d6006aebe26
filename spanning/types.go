// SPDX-License-Identifier: MIT

package spanning

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by BuildMinimumSpanningForest.
var (
	// ErrNilChart indicates that a nil *chart.Chart was passed.
	ErrNilChart = errors.New("spanning: chart is nil")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("spanning: unknown strategy")
)

// Strategy selects how component membership is tracked.
type Strategy int

const (
	// StrategyScan finds branches by scanning the forest.
	StrategyScan Strategy = iota

	// StrategyDisjointSet finds components through a rank/path-compressed union-find.
	StrategyDisjointSet
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyDisjointSet:
		return "dsu"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" and "dsu" to their Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "scan":
		return StrategyScan, nil
	case "dsu", "disjoint-set":
		return StrategyDisjointSet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Options configures BuildMinimumSpanningForest.
type Options struct {
	Strategy Strategy
	Context  context.Context
	Logger   logrus.FieldLogger
}

// Option represents a functional option.
type Option func(*Options)

// WithStrategy picks the membership structure.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithContext makes the build return ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger sets the logger receiving accept/reject traces at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the scan strategy with a background context and a
// discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Strategy: StrategyScan,
		Context:  context.Background(),
		Logger:   l,
	}
}
