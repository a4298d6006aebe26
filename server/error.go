// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/shortest"
)

// ErrNothingPicked is returned when no position lies under a picked point.
var ErrNothingPicked = errors.New("server: no position at point")

// ParsingError indicates that a request parameter could not be parsed.
type ParsingError struct {
	Param string
	Err   error
}

func (e *ParsingError) Unwrap() error { return e.Err }

func (e *ParsingError) Error() string {
	if e.Param == "" {
		return e.Err.Error()
	}

	return "parameter " + e.Param + ": " + e.Err.Error()
}

// RequiredError indicates that a required request parameter is absent.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return "required field '" + e.Field + "' is zero value."
}

// ErrorHandler writes err to w. result, when not nil, carries the status the
// service chose.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// DefaultErrorHandler maps known errors to status codes and writes them as JSON.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error, result *ImplResponse) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError && result != nil && result.Code != 0 {
		code = result.Code
	}
	_ = EncodeJSONResponse(errorBody{Error: err.Error()}, &code, w)
}

// StatusFor returns the HTTP status that reports err.
func StatusFor(err error) int {
	var pe *ParsingError
	var re *RequiredError
	switch {
	case errors.As(err, &pe), errors.As(err, &re):
		return http.StatusBadRequest
	case errors.Is(err, chart.ErrUnknownPosition), errors.Is(err, ErrNothingPicked):
		return http.StatusNotFound
	case errors.Is(err, shortest.ErrNoPathExists):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
