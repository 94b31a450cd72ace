package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventify/models"

	"github.com/go-redis/redis/v8"
)

const cartPrefix = "cart:"

// RedisCartStore keeps each cart as a JSON blob.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore returns a store. A zero ttl keeps carts until cleared.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, userID string) ([]models.Service, error) {
	data, err := s.client.Get(ctx, cartPrefix+userID).Bytes()
	if err == redis.Nil {
		return []models.Service{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	var items []models.Service
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID string, items []models.Service) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartPrefix+userID, b, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, cartPrefix+userID).Err()
}
