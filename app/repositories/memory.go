package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
)

// In-memory drivers. They mirror the Mongo repositories' contracts,
// including returning mongo.ErrNoDocuments for misses, so services behave
// identically against either backend. The menu driver performs the same
// compare-and-decrement as the Mongo conditional update, under a mutex.

// ------------------- Menu -------------------

type MemoryMenuRepository struct {
	mu    sync.Mutex
	items []models.MenuItem
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{}
}

func (r *MemoryMenuRepository) All(_ context.Context) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryMenuRepository) Find(_ context.Context, id string) (models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID.Hex() == id {
			return item, nil
		}
	}
	return models.MenuItem{}, mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) Create(_ context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, *item)
	return nil
}

func (r *MemoryMenuRepository) Update(_ context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			item.UpdatedAt = time.Now()
			r.items[i] = *item
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) DecrementStock(_ context.Context, id string, qty int) (models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id && r.items[i].Quantity >= qty {
			r.items[i].Quantity -= qty
			r.items[i].UpdatedAt = time.Now()
			return r.items[i], nil
		}
	}
	return models.MenuItem{}, mongo.ErrNoDocuments
}

// ------------------- User -------------------

type MemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			// Same shape of failure the unique index produces.
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.users[i] = *user
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) All(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// ------------------- Entry -------------------

type MemoryEntryRepository struct {
	mu      sync.Mutex
	entries []models.Entry
}

func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{}
}

func (r *MemoryEntryRepository) Create(_ context.Context, entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *MemoryEntryRepository) All(_ context.Context) ([]models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *MemoryEntryRepository) FindByEmail(_ context.Context, email string) (models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Email == email {
			return e, nil
		}
	}
	return models.Entry{}, mongo.ErrNoDocuments
}

func (r *MemoryEntryRepository) Update(_ context.Context, entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == entry.ID {
			entry.UpdatedAt = time.Now()
			r.entries[i] = *entry
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryEntryRepository) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].Email == email {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// ------------------- Cart -------------------

type memoryCart struct {
	lines     []models.CartLine
	expiresAt time.Time
}

// MemoryCartStore keeps carts in a map with per-cart expiry. The scheduler
// calls Purge to drop expired carts.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*memoryCart
	ttl   time.Duration
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{carts: map[string]*memoryCart{}, ttl: ttl}
}

func (s *MemoryCartStore) Append(_ context.Context, sessionID string, line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok || time.Now().After(c.expiresAt) {
		c = &memoryCart{}
		s.carts[sessionID] = c
	}
	c.lines = append(c.lines, line)
	c.expiresAt = time.Now().Add(s.ttl)
	return nil
}

func (s *MemoryCartStore) Lines(_ context.Context, sessionID string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok || time.Now().After(c.expiresAt) {
		return nil, nil
	}
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out, nil
}

func (s *MemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// Purge removes expired carts and returns how many were dropped.
func (s *MemoryCartStore) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, c := range s.carts {
		if now.After(c.expiresAt) {
			delete(s.carts, id)
			dropped++
		}
	}
	return dropped
}
