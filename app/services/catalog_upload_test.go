package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/crypt"
	"github.com/shashiranjanraj/kusina/pkg/storage"
)

// useMemoryStorage points the default disk at a fresh in-memory disk so
// uploads never touch the filesystem.
func useMemoryStorage(t *testing.T) {
	t.Helper()
	storage.RegisterDisk("memory", storage.NewMemoryDisk())
	storage.SetDefault("memory")
}

func TestCatalogService_Upload(t *testing.T) {
	ctx := context.Background()
	useMemoryStorage(t)
	repo := repositories.NewMemoryMenuRepository()
	svc := services.NewCatalogService(repo)

	img := []byte("fake jpeg bytes")
	item, err := svc.Upload(ctx, services.UploadInput{
		Name:        "Lumpia",
		Price:       60,
		Description: "spring rolls",
		Quantity:    12,
		Filename:    "Lumpia.JPG",
		Image:       img,
	})
	require.NoError(t, err)
	assert.False(t, item.ID.IsZero())
	assert.Equal(t, 12, item.Quantity)

	// Stored under a content-hash name with a lowercased extension.
	wantPath := "menu/" + crypt.Hash(string(img))[:16] + ".jpg"
	assert.Equal(t, wantPath, item.Image)
	require.True(t, storage.Exists(wantPath))
	stored, err := storage.Get(wantPath)
	require.NoError(t, err)
	assert.Equal(t, img, stored)

	// The document landed in the repository.
	found, err := repo.Find(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Lumpia", found.Name)
	assert.Equal(t, wantPath, found.Image)
}

func TestCatalogService_Upload_SameImageReusesPath(t *testing.T) {
	ctx := context.Background()
	useMemoryStorage(t)
	svc := services.NewCatalogService(repositories.NewMemoryMenuRepository())

	img := []byte("identical picture")
	first, err := svc.Upload(ctx, services.UploadInput{Name: "Taho", Price: 25, Filename: "taho.png", Image: img})
	require.NoError(t, err)
	second, err := svc.Upload(ctx, services.UploadInput{Name: "Taho Special", Price: 35, Filename: "other-name.png", Image: img})
	require.NoError(t, err)

	assert.Equal(t, first.Image, second.Image)

	files, err := storage.AllFiles("menu")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestCatalogService_Upload_WithoutImage(t *testing.T) {
	ctx := context.Background()
	useMemoryStorage(t)
	svc := services.NewCatalogService(repositories.NewMemoryMenuRepository())

	item, err := svc.Upload(ctx, services.UploadInput{Name: "Turon", Price: 20})
	require.NoError(t, err)
	assert.Empty(t, item.Image)

	// Quantity defaults to zero: the dish is listed but not orderable.
	assert.Equal(t, 0, item.Quantity)
	assert.False(t, item.Orderable())

	files, err := storage.AllFiles("")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCatalogService_Upload_InvalidInput(t *testing.T) {
	ctx := context.Background()
	useMemoryStorage(t)
	svc := services.NewCatalogService(repositories.NewMemoryMenuRepository())

	_, err := svc.Upload(ctx, services.UploadInput{Name: "", Price: 10})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Upload(ctx, services.UploadInput{Name: "Sisig", Price: -1})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Upload(ctx, services.UploadInput{Name: "Sisig", Price: 150, Quantity: -2})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}
