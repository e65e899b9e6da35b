package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account in the back office.
// Password is a bcrypt hash and never serialised.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName  string             `bson:"firstname"     json:"firstname"`
	LastName   string             `bson:"lastname"      json:"lastname" `
	MiddleName string             `bson:"middlename,omitempty" json:"middlename,omitempty"`
	Email      string             `bson:"email"         json:"email"    `
	Password   string             `bson:"password"      json:"-"`
	Role       string             `bson:"role"          json:"role"`
	CreatedAt  time.Time          `bson:"created_at"    json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"    json:"updated_at"`
}
