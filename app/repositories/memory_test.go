package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
)

func TestMemoryCartStore_ExpiryAndPurge(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryCartStore(50 * time.Millisecond)

	err := store.Append(ctx, "sid-1", models.CartLine{Name: "Chicken Adobo", Quantity: 1})
	require.NoError(t, err)
	err = store.Append(ctx, "sid-2", models.CartLine{Name: "Halo-Halo", Quantity: 2})
	require.NoError(t, err)

	lines, err := store.Lines(ctx, "sid-1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	// Nothing has expired yet, so a purge drops nothing.
	assert.Equal(t, 0, store.Purge(time.Now()))

	lines, err = store.Lines(ctx, "sid-1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	// A purge in the far future drops every cart.
	assert.Equal(t, 2, store.Purge(time.Now().Add(time.Hour)))

	lines, err = store.Lines(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryCartStore_ExpiredCartReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryCartStore(10 * time.Millisecond)

	require.NoError(t, store.Append(ctx, "sid-1", models.CartLine{Name: "Sinigang", Quantity: 1}))
	time.Sleep(25 * time.Millisecond)

	lines, err := store.Lines(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Appending after expiry starts a fresh cart rather than reviving old lines.
	require.NoError(t, store.Append(ctx, "sid-1", models.CartLine{Name: "Lechon", Quantity: 1}))
	lines, err = store.Lines(ctx, "sid-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Lechon", lines[0].Name)
}

func TestMemoryMenuRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryMenuRepository()

	item := models.MenuItem{Name: "Pancit", Price: 95, Quantity: 4}
	require.NoError(t, repo.Create(ctx, &item))

	got, err := repo.DecrementStock(ctx, item.ID.Hex(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)

	_, err = repo.DecrementStock(ctx, item.ID.Hex(), 3)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)

	stored, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
}

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()

	u := models.User{FirstName: "Gabriela", Email: "gabriela@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, &u))

	dup := models.User{FirstName: "Other", Email: "gabriela@example.com", Password: "hash"}
	err := repo.Create(ctx, &dup)
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestMemoryEntryRepository_EmailLookup(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryEntryRepository()

	e := models.Entry{Name: "Caller", Email: "caller@example.com", Phone: "09171234567", Message: "reservation for two"}
	require.NoError(t, repo.Create(ctx, &e))

	found, err := repo.FindByEmail(ctx, "caller@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reservation for two", found.Message)

	require.NoError(t, repo.DeleteByEmail(ctx, "caller@example.com"))
	_, err = repo.FindByEmail(ctx, "caller@example.com")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
