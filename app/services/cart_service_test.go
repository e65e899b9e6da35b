package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
)

func newCartFixture(t *testing.T) (*repositories.MemoryMenuRepository, *services.CartService) {
	t.Helper()
	repo := repositories.NewMemoryMenuRepository()
	stock := services.NewStockService(repo, 0)
	carts := repositories.NewMemoryCartStore(time.Hour)
	return repo, services.NewCartService(stock, carts)
}

func TestCartService_AddThenInsufficient(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Adobo", 3)

	// Add 2 of 3: stock drops, one line lands in the cart.
	line, err := svc.Add(ctx, "sess-1", item.ID.Hex(), 2)
	require.NoError(t, err)
	assert.Equal(t, item.ID.Hex(), line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Adobo", line.Name)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)

	cart, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count)

	// Add 2 more: only 1 left, so the add fails and nothing moves.
	_, err = svc.Add(ctx, "sess-1", item.ID.Hex(), 2)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	stored, err = repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)

	cart, err = svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count)
}

func TestCartService_DuplicateLinesNotMerged(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Pancit", 10)

	_, err := svc.Add(ctx, "sess-1", item.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sess-1", item.ID.Hex(), 2)
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 2, cart.Count)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
	assert.InDelta(t, 300, cart.Total, 0.001)
}

func TestCartService_SoldOutItemRejected(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Sold Out Soup", 0)

	_, err := svc.Add(ctx, "sess-1", item.ID.Hex(), 1)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	cart, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count)
}

func TestCartService_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Halo-Halo", 5)

	_, err := svc.Add(ctx, "sess-1", item.ID.Hex(), 0)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Lumpia", 10)

	_, err := svc.Add(ctx, "sess-a", item.ID.Hex(), 1)
	require.NoError(t, err)

	cartB, err := svc.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.Equal(t, 0, cartB.Count)
}

func TestCartService_ClearDoesNotRestock(t *testing.T) {
	ctx := context.Background()
	repo, svc := newCartFixture(t)
	item := seedItem(t, repo, "Sisig", 6)

	_, err := svc.Add(ctx, "sess-1", item.ID.Hex(), 4)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess-1"))

	cart, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count)

	// Clearing the cart keeps the stock where the add left it.
	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)
}
