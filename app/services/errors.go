package services

import "errors"

// Service-level failure classes. Controllers map these onto wire envelopes;
// nothing below the controller boundary writes HTTP responses.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrStorage           = errors.New("storage error")
)
