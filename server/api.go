// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"net/http"
)

// ChartApiRouter binds chart requests to responses.
//
// Implementations parse the request, call a ChartApiServicer and write its
// result to the response.
type ChartApiRouter interface {
	GetChart(http.ResponseWriter, *http.Request)
	GetPositions(http.ResponseWriter, *http.Request)
	GetLinks(http.ResponseWriter, *http.Request)
	Pick(http.ResponseWriter, *http.Request)
	FindPath(http.ResponseWriter, *http.Request)
	FindPathGeoJSON(http.ResponseWriter, *http.Request)
	BuildForest(http.ResponseWriter, *http.Request)
	BuildForestGeoJSON(http.ResponseWriter, *http.Request)
}

// ChartApiServicer performs the chart actions.
type ChartApiServicer interface {
	GetChart(context.Context) (ImplResponse, error)
	GetPositions(context.Context) (ImplResponse, error)
	GetLinks(context.Context) (ImplResponse, error)
	Pick(ctx context.Context, x, y float64) (ImplResponse, error)
	FindPath(ctx context.Context, from, to string) (ImplResponse, error)
	FindPathGeoJSON(ctx context.Context, from, to string) ([]byte, error)
	BuildForest(context.Context) (ImplResponse, error)
	BuildForestGeoJSON(context.Context) ([]byte, error)
}
