package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

const cartKeyPrefix = "pos:cart:"

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store backed by Redis. Each cart is one
// JSON blob per user, rewritten wholesale on every mutation; the TTL is
// refreshed on save so an active checkout never expires mid-session.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) domainRepo.CartStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisCartStore{client: client, ttl: ttl}
}

func cartKey(userID uuid.UUID) string {
	return cartKeyPrefix + userID.String()
}

func (s *redisCartStore) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCart(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// A corrupt blob should not brick the session; start over
		return entity.NewCart(userID), nil
	}
	return &cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
