// Package listeners binds application events to their handlers.
package listeners

import (
	"github.com/shashiranjanraj/kusina/app/events"
	"github.com/shashiranjanraj/kusina/app/jobs"
	"github.com/shashiranjanraj/kusina/pkg/event"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/queue"
	"github.com/shashiranjanraj/kusina/pkg/workerpool"
)

// Register wires every listener. The pool bounds how much event fan-out
// can run at once; when it is saturated the dispatch happens inline.
func Register(pool *workerpool.Pool) {
	event.Listen(events.StockLow, func(payload interface{}) {
		p, ok := payload.(events.StockLowPayload)
		if !ok {
			logger.Error("stock.low: unexpected payload", "payload", payload)
			return
		}

		dispatch := func() {
			if err := queue.Dispatch(&jobs.LowStockJob{Payload: p}); err != nil {
				logger.Error("stock.low: dispatch failed",
					"product_id", p.ProductID, "error", err)
			}
		}
		if err := pool.Submit(dispatch); err != nil {
			dispatch()
		}
	})
}
