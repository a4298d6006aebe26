// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long in-flight requests may run after ctx ends.
const shutdownTimeout = 5 * time.Second

// NewHandler returns the complete HTTP handler serving c.
func NewHandler(c *chart.Chart, log logrus.FieldLogger, opts ...ServiceOption) http.Handler {
	opts = append([]ServiceOption{WithLogger(log)}, opts...)
	service := NewChartApiService(c, opts...)
	controller := NewChartApiController(service)

	return NewRouter(log, controller)
}

// ListenAndServe serves handler on addr until ctx is done, then shuts down.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
