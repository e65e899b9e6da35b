package services

import "github.com/shashiranjanraj/kusina/pkg/metrics"

// Domain counters, registered alongside the default HTTP metrics.
var (
	stockDecrements = metrics.NewCounter(
		"kusina", "stock_decrements_total",
		"Stock decrement attempts by outcome.",
		[]string{"outcome"},
	)

	cartLines = metrics.NewCounter(
		"kusina", "cart_lines_added_total",
		"Lines appended to session carts.",
		nil,
	)
)
