package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/netyark/storefront-backend/pkg/redis"
)

// Repository persists a cart as one unit. Every save overwrites the
// whole serialized line list; there are no partial writes.
type Repository interface {
	Load(ctx context.Context, cartID string) ([]LineItem, error)
	Save(ctx context.Context, cartID string, lines []LineItem) error
	Delete(ctx context.Context, cartID string) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(cartID string) string
}

type redisRepository struct {
	store kvStore
	ttl   time.Duration
}

// NewRepository builds the Redis-backed cart repository. Carts expire
// after the configured TTL of inactivity.
func NewRepository(store kvStore, ttl time.Duration) (Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("kv store required")
	}
	return &redisRepository{store: store, ttl: ttl}, nil
}

func (r *redisRepository) Load(ctx context.Context, cartID string) ([]LineItem, error) {
	raw, err := r.store.Get(ctx, r.store.CartKey(cartID))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []LineItem
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (r *redisRepository) Save(ctx context.Context, cartID string, lines []LineItem) error {
	if lines == nil {
		lines = []LineItem{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.store.Set(ctx, r.store.CartKey(cartID), string(raw), r.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.store.Del(ctx, r.store.CartKey(cartID)); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
