// Package events names the application events and their payloads.
package events

// StockLow fires after a decrement leaves an item at or below the
// configured threshold.
const StockLow = "stock.low"

// StockLowPayload is the payload for StockLow.
type StockLowPayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Remaining int     `json:"remaining"`
	Price     float64 `json:"price"`
}
