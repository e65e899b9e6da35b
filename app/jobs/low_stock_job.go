// Package jobs holds the queued background jobs.
package jobs

import (
	"github.com/shashiranjanraj/kusina/app/events"
	"github.com/shashiranjanraj/kusina/app/notifications"
	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/notification"
	"github.com/shashiranjanraj/kusina/pkg/queue"
)

// LowStockJob delivers the low-stock notification off the request path.
type LowStockJob struct {
	Payload events.StockLowPayload `json:"payload"`
}

func (j *LowStockJob) Handle() error {
	to := config.Get("STOCK_ALERT_EMAIL", config.Get("MAIL_FROM", ""))
	if to == "" {
		logger.Warn("low stock job: no alert address configured, skipping",
			"product_id", j.Payload.ProductID)
		return nil
	}

	errs := notification.Send(to, &notifications.LowStock{Payload: j.Payload})
	if len(errs) > 0 {
		return errs[0]
	}

	logger.Info("low stock alert sent",
		"product_id", j.Payload.ProductID, "remaining", j.Payload.Remaining)
	return nil
}

func init() {
	queue.Register("low_stock", func() queue.Job { return &LowStockJob{} })
}
