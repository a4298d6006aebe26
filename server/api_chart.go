// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"strconv"
	"strings"
)

// ChartApiController binds http requests to a ChartApiServicer and writes the
// service results to the http response.
type ChartApiController struct {
	service      ChartApiServicer
	errorHandler ErrorHandler
}

// ChartApiOption for how the controller is set up.
type ChartApiOption func(*ChartApiController)

// WithChartApiErrorHandler injects an ErrorHandler into the controller.
func WithChartApiErrorHandler(h ErrorHandler) ChartApiOption {
	return func(c *ChartApiController) {
		c.errorHandler = h
	}
}

// NewChartApiController creates a chart api controller.
func NewChartApiController(s ChartApiServicer, opts ...ChartApiOption) Router {
	controller := &ChartApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api routes for the ChartApiController.
func (c *ChartApiController) Routes() Routes {
	get := strings.ToUpper("Get")
	return Routes{
		{"GetChart", get, "/chart", c.GetChart},
		{"GetPositions", get, "/positions", c.GetPositions},
		{"GetLinks", get, "/links", c.GetLinks},
		{"Pick", get, "/pick", c.Pick},
		{"FindPath", get, "/path", c.FindPath},
		{"FindPathGeoJSON", get, "/path.geojson", c.FindPathGeoJSON},
		{"BuildForest", get, "/forest", c.BuildForest},
		{"BuildForestGeoJSON", get, "/forest.geojson", c.BuildForestGeoJSON},
	}
}

// GetChart - Summarise the chart
func (c *ChartApiController) GetChart(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetChart(r.Context())
	c.respond(w, r, result, err)
}

// GetPositions - List positions
func (c *ChartApiController) GetPositions(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetPositions(r.Context())
	c.respond(w, r, result, err)
}

// GetLinks - List links
func (c *ChartApiController) GetLinks(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetLinks(r.Context())
	c.respond(w, r, result, err)
}

// Pick - Name the position under a point
func (c *ChartApiController) Pick(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	x, err := parseFloatParameter(query.Get("x"), "x")
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	y, err := parseFloatParameter(query.Get("y"), "y")
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.Pick(r.Context(), x, y)
	c.respond(w, r, result, err)
}

// FindPath - Cheapest route between two positions
func (c *ChartApiController) FindPath(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpointParameters(r)
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.FindPath(r.Context(), from, to)
	c.respond(w, r, result, err)
}

// FindPathGeoJSON - Cheapest route as GeoJSON
func (c *ChartApiController) FindPathGeoJSON(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpointParameters(r)
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	body, err := c.service.FindPathGeoJSON(r.Context(), from, to)
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	setCORSHeaders(w)
	_ = EncodeGeoJSONResponse(body, w)
}

// BuildForest - Minimum spanning forest
func (c *ChartApiController) BuildForest(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.BuildForest(r.Context())
	c.respond(w, r, result, err)
}

// BuildForestGeoJSON - Minimum spanning forest as GeoJSON
func (c *ChartApiController) BuildForestGeoJSON(w http.ResponseWriter, r *http.Request) {
	body, err := c.service.BuildForestGeoJSON(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	setCORSHeaders(w)
	_ = EncodeGeoJSONResponse(body, w)
}

func (c *ChartApiController) respond(w http.ResponseWriter, r *http.Request, result ImplResponse, err error) {
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCORSHeaders(w)
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func endpointParameters(r *http.Request) (string, string, error) {
	query := r.URL.Query()
	from, to := query.Get("from"), query.Get("to")
	if from == "" {
		return "", "", &RequiredError{Field: "from"}
	}
	if to == "" {
		return "", "", &RequiredError{Field: "to"}
	}

	return from, to, nil
}

func parseFloatParameter(raw, name string) (float64, error) {
	if raw == "" {
		return 0, &RequiredError{Field: name}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParsingError{Param: name, Err: err}
	}

	return v, nil
}
