package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/pkg/cache"
)

// CartStore is the session-scoped cart accumulator. Lines are appended in
// order and never merged; the cart expires with its TTL rather than being
// reconciled back to stock.
type CartStore interface {
	Append(ctx context.Context, sessionID string, line models.CartLine) error
	Lines(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Clear(ctx context.Context, sessionID string) error
}

// ------------------- Redis driver -------------------

type redisCartStore struct{}

// NewRedisCartStore returns the production cart store backed by a Redis
// list per session. Each append refreshes the TTL.
func NewRedisCartStore() CartStore {
	return &redisCartStore{}
}

func cartKey(sessionID string) string { return "kusina:cart:" + sessionID }

func (s *redisCartStore) Append(ctx context.Context, sessionID string, line models.CartLine) error {
	raw, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("cart: marshal line: %w", err)
	}

	key := cartKey(sessionID)
	if err := cache.RDB.RPush(ctx, key, raw).Err(); err != nil {
		return fmt.Errorf("cart: push: %w", err)
	}
	if err := cache.RDB.Expire(ctx, key, config.CartTTL()).Err(); err != nil {
		return fmt.Errorf("cart: expire: %w", err)
	}
	return nil
}

func (s *redisCartStore) Lines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	raws, err := cache.RDB.LRange(ctx, cartKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("cart: range: %w", err)
	}

	lines := make([]models.CartLine, 0, len(raws))
	for _, raw := range raws {
		var line models.CartLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return nil, fmt.Errorf("cart: decode line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *redisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := cache.RDB.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart: clear: %w", err)
	}
	return nil
}
