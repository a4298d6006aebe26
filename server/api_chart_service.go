// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/path"
	"github.com/katalvlaran/chartpath/render"
	"github.com/katalvlaran/chartpath/shortest"
	"github.com/katalvlaran/chartpath/spanning"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// ChartApiService answers requests against one read-only chart. It holds no
// mutable state, so handlers share it freely.
type ChartApiService struct {
	chart      *chart.Chart
	pickRadius float64
	strategy   spanning.Strategy
	log        logrus.FieldLogger
}

// ServiceOption configures a ChartApiService.
type ServiceOption func(*ChartApiService)

// WithPickRadius sets the radius used by Pick.
func WithPickRadius(r float64) ServiceOption {
	return func(s *ChartApiService) { s.pickRadius = r }
}

// WithStrategy sets the forest strategy used by BuildForest.
func WithStrategy(st spanning.Strategy) ServiceOption {
	return func(s *ChartApiService) { s.strategy = st }
}

// WithLogger sets the logger passed down to the algorithms.
func WithLogger(l logrus.FieldLogger) ServiceOption {
	return func(s *ChartApiService) {
		if l != nil {
			s.log = l
		}
	}
}

// NewChartApiService creates a service over c.
func NewChartApiService(c *chart.Chart, opts ...ServiceOption) *ChartApiService {
	s := &ChartApiService{
		chart:      c,
		pickRadius: chart.DefaultPickRadius,
		strategy:   spanning.StrategyScan,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetChart summarises the chart.
func (s *ChartApiService) GetChart(_ context.Context) (ImplResponse, error) {
	b := s.chart.Bound()
	return Response(http.StatusOK, ChartModel{
		Image:     s.chart.Image(),
		Positions: s.chart.PositionCount(),
		Links:     s.chart.LinkCount(),
		Min:       [2]float64{b.Min[0], b.Min[1]},
		Max:       [2]float64{b.Max[0], b.Max[1]},
	}), nil
}

// GetPositions lists every position in name order.
func (s *ChartApiService) GetPositions(_ context.Context) (ImplResponse, error) {
	ps := s.chart.Positions()
	out := make([]PositionModel, 0, len(ps))
	for _, p := range ps {
		out = append(out, newPositionModel(p))
	}

	return Response(http.StatusOK, out), nil
}

// GetLinks lists every link in construction order.
func (s *ChartApiService) GetLinks(_ context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, newLinkModels(s.chart.Links())), nil
}

// Pick returns the position under (x, y).
func (s *ChartApiService) Pick(_ context.Context, x, y float64) (ImplResponse, error) {
	name, ok := s.chart.PositionAt(orb.Point{x, y}, s.pickRadius)
	if !ok {
		return Response(http.StatusNotFound, nil), fmt.Errorf("%w: (%g, %g)", ErrNothingPicked, x, y)
	}

	return Response(http.StatusOK, PickModel{Name: name}), nil
}

// FindPath computes the cheapest route between two named positions.
func (s *ChartApiService) FindPath(ctx context.Context, from, to string) (ImplResponse, error) {
	p, err := s.shortestPath(ctx, from, to)
	if err != nil {
		return Response(StatusFor(err), nil), err
	}

	names := make([]string, 0, p.Len()+1)
	for _, pos := range p.Positions() {
		names = append(names, pos.Name())
	}

	return Response(http.StatusOK, PathModel{
		From:      from,
		To:        to,
		Cost:      p.TotalCost(),
		Positions: names,
		Links:     newLinkModels(p.Links()),
	}), nil
}

// FindPathGeoJSON renders the cheapest route as GeoJSON.
func (s *ChartApiService) FindPathGeoJSON(ctx context.Context, from, to string) ([]byte, error) {
	p, err := s.shortestPath(ctx, from, to)
	if err != nil {
		return nil, err
	}

	g := render.NewGeoJSONRenderer()
	if err := render.Path(g, p); err != nil {
		return nil, err
	}

	return g.MarshalJSON()
}

// BuildForest computes the minimum spanning forest.
func (s *ChartApiService) BuildForest(ctx context.Context) (ImplResponse, error) {
	links, err := s.forest(ctx)
	if err != nil {
		return Response(StatusFor(err), nil), err
	}

	return Response(http.StatusOK, ForestModel{
		Strategy: s.strategy.String(),
		Cost:     spanning.TotalCost(links),
		Links:    newLinkModels(links),
	}), nil
}

// BuildForestGeoJSON renders the minimum spanning forest as GeoJSON.
func (s *ChartApiService) BuildForestGeoJSON(ctx context.Context) ([]byte, error) {
	links, err := s.forest(ctx)
	if err != nil {
		return nil, err
	}

	g := render.NewGeoJSONRenderer()
	if err := render.Links(g, links); err != nil {
		return nil, err
	}

	return g.MarshalJSON()
}

func (s *ChartApiService) shortestPath(ctx context.Context, from, to string) (*path.Path, error) {
	return shortest.FindShortestPath(s.chart, from, to,
		shortest.WithContext(ctx),
		shortest.WithLogger(s.log),
	)
}

func (s *ChartApiService) forest(ctx context.Context) ([]*chart.Link, error) {
	return spanning.BuildMinimumSpanningForest(s.chart,
		spanning.WithStrategy(s.strategy),
		spanning.WithContext(ctx),
		spanning.WithLogger(s.log),
	)
}
