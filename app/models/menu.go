package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish in the catalogue.
// Image holds the storage path of the uploaded picture, served under /uploads/.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name"           json:"name"    `
	Price       float64            `bson:"price"          json:"price"   `
	Description string             `bson:"description"    json:"description"`
	Image       string             `bson:"image"          json:"image"`
	Quantity    int                `bson:"quantity"       json:"quantity"`
	Disabled    bool               `bson:"disabled"       json:"disabled"`
	CreatedAt   time.Time          `bson:"created_at"     json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"     json:"updated_at"`
}

// Orderable reports whether the item can currently be added to a cart.
func (m MenuItem) Orderable() bool {
	return !m.Disabled && m.Quantity > 0
}
