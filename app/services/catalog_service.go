package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/pkg/collection"
	"github.com/shashiranjanraj/kusina/pkg/crypt"
	"github.com/shashiranjanraj/kusina/pkg/storage"
)

// CatalogService owns the menu: listing with the customer-facing filter,
// uploads with image storage, and admin edits.
type CatalogService struct {
	menus repositories.MenuRepository
}

func NewCatalogService(menus repositories.MenuRepository) *CatalogService {
	return &CatalogService{menus: menus}
}

// List returns the orderable catalogue: disabled items are excluded, and
// when query is non-empty only items whose name, description or price
// text contains it (case-insensitively) survive. Order follows the
// repository's stable sort, so filtering twice with the same query gives
// the same slice.
func (s *CatalogService) List(ctx context.Context, query string) ([]models.MenuItem, error) {
	items, err := s.menus.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := collection.Filter(items, func(item models.MenuItem) bool {
		if item.Disabled {
			return false
		}
		return q == "" || matchesQuery(item, q)
	})
	if out == nil {
		out = []models.MenuItem{}
	}
	return out, nil
}

func matchesQuery(item models.MenuItem, query string) bool {
	haystack := strings.ToLower(item.Name + " " + item.Description + " " +
		strconv.FormatFloat(item.Price, 'f', -1, 64))
	return strings.Contains(haystack, query)
}

// Find returns a single item by id.
func (s *CatalogService) Find(ctx context.Context, id string) (models.MenuItem, error) {
	item, err := s.menus.Find(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, fmt.Errorf("%w: menu %s", ErrNotFound, id)
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return item, nil
}

// UploadInput carries a new dish and its picture.
type UploadInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    int
	Filename    string
	Image       []byte
}

// Upload stores the picture on the configured disk under a content-hash
// name and creates the catalogue document pointing at it. Re-uploading
// the same picture reuses the same stored file.
func (s *CatalogService) Upload(ctx context.Context, in UploadInput) (models.MenuItem, error) {
	if in.Name == "" || in.Price < 0 || in.Quantity < 0 {
		return models.MenuItem{}, fmt.Errorf("%w: name, non-negative price and quantity required", ErrInvalidInput)
	}

	var imagePath string
	if len(in.Image) > 0 {
		ext := strings.ToLower(filepath.Ext(in.Filename))
		imagePath = "menu/" + crypt.Hash(string(in.Image))[:16] + ext
		if err := storage.Put(imagePath, in.Image); err != nil {
			return models.MenuItem{}, fmt.Errorf("%w: store image: %v", ErrStorage, err)
		}
	}

	item := models.MenuItem{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Image:       imagePath,
		Quantity:    in.Quantity,
	}
	if err := s.menus.Create(ctx, &item); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return item, nil
}

// UpdateInput carries an admin edit. Nil Quantity or Disabled leaves the
// stored value alone.
type UpdateInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    *int
	Disabled    *bool
}

// Update rewrites an item's fields.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateInput) (models.MenuItem, error) {
	if in.Name == "" || in.Price < 0 {
		return models.MenuItem{}, fmt.Errorf("%w: name and non-negative price required", ErrInvalidInput)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return models.MenuItem{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	item, err := s.menus.Find(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, fmt.Errorf("%w: menu %s", ErrNotFound, id)
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	item.Name = in.Name
	item.Price = in.Price
	item.Description = in.Description
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Disabled != nil {
		item.Disabled = *in.Disabled
	}

	if err := s.menus.Update(ctx, &item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MenuItem{}, fmt.Errorf("%w: menu %s", ErrNotFound, id)
		}
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return item, nil
}

// Delete removes an item. The stored picture is left behind; other items
// may share it through the content-hash name.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.menus.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: menu %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
