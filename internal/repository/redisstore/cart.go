package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

// CartStore keeps carts in Redis, one JSON document per user, refreshed
// with a sliding TTL on every save.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(redisURL string, ttl time.Duration) (*CartStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CartStore{client: client, ttl: ttl}, nil
}

var _ repository.CartStore = (*CartStore)(nil)

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Get loads the user's cart, returning a fresh empty cart when none exists.
func (s *CartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := &domain.Cart{}
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// Save persists the cart and resets its TTL.
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete drops the user's cart.
func (s *CartStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *CartStore) Close() error {
	return s.client.Close()
}
