package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
)

func seedCatalog(t *testing.T, repo *repositories.MemoryMenuRepository) {
	t.Helper()
	ctx := context.Background()
	items := []models.MenuItem{
		{Name: "Chicken Adobo", Price: 120, Description: "Braised in soy and vinegar", Quantity: 10},
		{Name: "Halo-Halo", Price: 85, Description: "Shaved ice dessert", Quantity: 5},
		{Name: "Secret Special", Price: 250, Description: "Off the menu", Quantity: 3, Disabled: true},
		{Name: "Sold Out Soup", Price: 60, Description: "Still listed", Quantity: 0},
	}
	for i := range items {
		require.NoError(t, repo.Create(ctx, &items[i]))
	}
}

func TestCatalogService_List_ExcludesDisabled(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	seedCatalog(t, repo)
	svc := services.NewCatalogService(repo)

	items, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.NotContains(t, names, "Secret Special")
	// A sold-out item stays listed; only disabled ones disappear.
	assert.Contains(t, names, "Sold Out Soup")
	assert.Len(t, items, 3)
}

func TestCatalogService_List_Filter(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	seedCatalog(t, repo)
	svc := services.NewCatalogService(repo)
	ctx := context.Background()

	// Case-insensitive substring over the name.
	items, err := svc.List(ctx, "aDoBo")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken Adobo", items[0].Name)

	// Over the description.
	items, err = svc.List(ctx, "dessert")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Halo-Halo", items[0].Name)

	// Over the price text.
	items, err = svc.List(ctx, "85")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Halo-Halo", items[0].Name)

	// A disabled item never matches, even by exact name.
	items, err = svc.List(ctx, "secret special")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_List_FilterIdempotent(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	seedCatalog(t, repo)
	svc := services.NewCatalogService(repo)
	ctx := context.Background()

	first, err := svc.List(ctx, "o")
	require.NoError(t, err)
	second, err := svc.List(ctx, "o")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCatalogService_Update(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewCatalogService(repo)
	ctx := context.Background()

	item := models.MenuItem{Name: "Kare-Kare", Price: 160, Quantity: 8}
	require.NoError(t, repo.Create(ctx, &item))

	qty := 12
	disabled := true
	updated, err := svc.Update(ctx, item.ID.Hex(), services.UpdateInput{
		Name:        "Kare-Kare Special",
		Price:       175,
		Description: "With extra bagoong",
		Quantity:    &qty,
		Disabled:    &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kare-Kare Special", updated.Name)
	assert.Equal(t, 175.0, updated.Price)
	assert.Equal(t, 12, updated.Quantity)
	assert.True(t, updated.Disabled)

	// Nil quantity/disabled leave the stored values alone.
	updated, err = svc.Update(ctx, item.ID.Hex(), services.UpdateInput{
		Name:  "Kare-Kare Special",
		Price: 175,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)
	assert.True(t, updated.Disabled)
}

func TestCatalogService_UpdateAndDelete_NotFound(t *testing.T) {
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewCatalogService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, "65b000000000000000000000", services.UpdateInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Delete(ctx, "65b000000000000000000000")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
