// SPDX-License-Identifier: MIT

// Package server exposes a chart over HTTP.
//
// A Controller parses requests and writes responses; a Servicer does the work.
// NewRouter mounts any number of controllers on a gorilla/mux router.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// A Route defines the parameters for an api endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a list of defined api endpoints.
type Routes []Route

// Router defines the required methods for retrieving api routes.
type Router interface {
	Routes() Routes
}

// NewRouter creates a new router for any number of api routers. Each route is
// wrapped in a request logger writing to log.
func NewRouter(log logrus.FieldLogger, routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, api := range routers {
		for _, route := range api.Routes() {
			var handler http.Handler = route.HandlerFunc
			handler = Logger(log, handler, route.Name)

			router.
				Methods(route.Method).
				Path(route.Pattern).
				Name(route.Name).
				Handler(handler)
		}
	}

	return router
}

// ImplResponse is the status code and body produced by a Servicer.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response returns a response with the given status and body.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}

// EncodeJSONResponse uses the json encoder to write an interface to the http response with an optional status code.
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if status != nil {
		w.WriteHeader(*status)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	return json.NewEncoder(w).Encode(i)
}

// EncodeGeoJSONResponse writes an already encoded GeoJSON document.
func EncodeGeoJSONResponse(body []byte, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(body)

	return err
}
