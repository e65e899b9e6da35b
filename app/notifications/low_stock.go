// Package notifications holds the notification types the app sends.
package notifications

import (
	"fmt"

	"github.com/shashiranjanraj/kusina/app/events"
	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/pkg/notification"
)

// LowStock warns the kitchen that an item is about to sell out.
type LowStock struct {
	Payload events.StockLowPayload
}

func (n *LowStock) Via() []string {
	channels := []string{"mail"}
	if config.Get("SLACK_WEBHOOK_URL", "") != "" {
		channels = append(channels, "slack")
	}
	return channels
}

func (n *LowStock) ToMail() notification.MailData {
	return notification.MailData{
		Subject: fmt.Sprintf("Low stock: %s (%d left)", n.Payload.Name, n.Payload.Remaining),
		Body: fmt.Sprintf("<p><strong>%s</strong> is down to %d units. Restock soon.</p>",
			n.Payload.Name, n.Payload.Remaining),
		Text: fmt.Sprintf("%s is down to %d units. Restock soon.",
			n.Payload.Name, n.Payload.Remaining),
	}
}

func (n *LowStock) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: fmt.Sprintf(":warning: Low stock: *%s* has %d units left", n.Payload.Name, n.Payload.Remaining),
		Attachments: []notification.SlackAttachment{{
			Color:  "warning",
			Title:  n.Payload.Name,
			Text:   fmt.Sprintf("%d units remaining at ₱%.2f", n.Payload.Remaining, n.Payload.Price),
			Footer: "kusina stock monitor",
		}},
	}
}
