package models

import "time"

// CartLine is one line in a session cart. It snapshots the product at the
// moment it was added, so later price or name edits do not rewrite carts.
// Adding the same product twice produces two lines.
type CartLine struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the view returned to clients: the lines plus their count and
// the running total in pesos.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}
