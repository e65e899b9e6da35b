package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/pkg/collection"
)

// CartService accumulates order lines per session. Stock is taken at add
// time; clearing or abandoning a cart never puts it back.
type CartService struct {
	stock *StockService
	carts repositories.CartStore
}

func NewCartService(stock *StockService, carts repositories.CartStore) *CartService {
	return &CartService{stock: stock, carts: carts}
}

// Add decrements stock for the product and appends a snapshot line to the
// session's cart. Adding the same product twice appends two lines.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, qty int) (models.CartLine, error) {
	if sessionID == "" {
		return models.CartLine{}, fmt.Errorf("%w: missing session", ErrInvalidInput)
	}

	item, err := s.stock.Decrement(ctx, productID, qty)
	if err != nil {
		return models.CartLine{}, err
	}

	line := models.CartLine{
		ProductID: item.ID.Hex(),
		Name:      item.Name,
		Price:     item.Price,
		Image:     item.Image,
		Quantity:  qty,
		AddedAt:   time.Now(),
	}
	if err := s.carts.Append(ctx, sessionID, line); err != nil {
		// Stock is already taken; the line is lost but stock is not
		// restored, same as an abandoned cart.
		return models.CartLine{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	cartLines.WithLabelValues().Inc()
	return line, nil
}

// Get returns the cart's lines with their count and price total.
func (s *CartService) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	lines, err := s.carts.Lines(ctx, sessionID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	total := collection.Sum(lines, func(l models.CartLine) float64 {
		return l.Price * float64(l.Quantity)
	})
	return models.Cart{Lines: lines, Count: len(lines), Total: total}, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
