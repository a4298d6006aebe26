// SPDX-License-Identifier: MIT

// Command chartpath finds cheapest routes and spanning forests on a chart.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(ctx).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
