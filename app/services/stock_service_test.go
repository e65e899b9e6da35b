package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
)

func seedItem(t *testing.T, repo *repositories.MemoryMenuRepository, name string, qty int) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Price: 100, Quantity: qty}
	require.NoError(t, repo.Create(context.Background(), &item))
	return item
}

func TestStockService_Decrement(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewStockService(repo, 0)

	item := seedItem(t, repo, "Adobo", 10)

	got, err := svc.Decrement(ctx, item.ID.Hex(), 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Quantity)
}

func TestStockService_Decrement_Insufficient(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewStockService(repo, 0)

	item := seedItem(t, repo, "Sinigang", 3)

	_, err := svc.Decrement(ctx, item.ID.Hex(), 5)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	// The failed attempt must not touch the stored quantity.
	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
}

func TestStockService_Decrement_NotFound(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewStockService(repo, 0)

	_, err := svc.Decrement(context.Background(), "65b000000000000000000000", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStockService_Decrement_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewStockService(repo, 0)

	item := seedItem(t, repo, "Pancit", 5)

	for _, qty := range []int{0, -1, -100} {
		_, err := svc.Decrement(ctx, item.ID.Hex(), qty)
		assert.ErrorIs(t, err, services.ErrInvalidInput, "qty=%d", qty)
	}

	_, err := svc.Decrement(ctx, "", 1)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

// Two concurrent decrements of 3 against a quantity of 5: exactly one may
// win, and the loser must leave the count alone.
func TestStockService_Decrement_ConcurrentNoOversell(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewStockService(repo, 0)

	item := seedItem(t, repo, "Lechon", 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Decrement(ctx, item.ID.Hex(), 3)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, services.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)
}
