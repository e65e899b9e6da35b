package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/events"
	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/pkg/event"
	"github.com/shashiranjanraj/kusina/pkg/logger"
)

// StockService adjusts item quantities. The decrement is delegated to the
// repository's conditional update, so the check and the write are one
// operation and concurrent callers can never jointly over-sell.
type StockService struct {
	menus     repositories.MenuRepository
	threshold int
}

// NewStockService builds a StockService. threshold is the quantity at or
// below which a decrement fires a low-stock event; 0 disables the alert
// for everything but sold-out items.
func NewStockService(menus repositories.MenuRepository, threshold int) *StockService {
	return &StockService{menus: menus, threshold: threshold}
}

// Decrement removes qty units from the item's stock and returns the item
// as it stands after the update.
func (s *StockService) Decrement(ctx context.Context, productID string, qty int) (models.MenuItem, error) {
	if productID == "" || qty <= 0 {
		stockDecrements.WithLabelValues("invalid").Inc()
		return models.MenuItem{}, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
	}

	item, err := s.menus.DecrementStock(ctx, productID, qty)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No match means the item is missing or its stock is below qty.
		if _, ferr := s.menus.Find(ctx, productID); ferr != nil {
			if errors.Is(ferr, mongo.ErrNoDocuments) {
				stockDecrements.WithLabelValues("not_found").Inc()
				return models.MenuItem{}, fmt.Errorf("%w: product %s", ErrNotFound, productID)
			}
			return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, ferr)
		}
		stockDecrements.WithLabelValues("insufficient").Inc()
		return models.MenuItem{}, fmt.Errorf("%w: product %s", ErrInsufficientStock, productID)
	}
	if err != nil {
		stockDecrements.WithLabelValues("error").Inc()
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	stockDecrements.WithLabelValues("ok").Inc()

	if item.Quantity <= s.threshold {
		logger.WithCtx(ctx).Warn("stock low",
			"product_id", item.ID.Hex(), "name", item.Name, "remaining", item.Quantity)
		event.FireAsync(events.StockLow, events.StockLowPayload{
			ProductID: item.ID.Hex(),
			Name:      item.Name,
			Remaining: item.Quantity,
			Price:     item.Price,
		})
	}

	return item, nil
}
