package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventify/models"

	"github.com/go-redis/redis/v8"
)

const (
	aiContextPrefix = "ai:ctx:"
	// MaxHistory bounds the number of stored messages per user.
	MaxHistory = 20
)

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AIContext, error) {
	data, err := s.client.Get(ctx, aiContextPrefix+userID).Bytes()
	if err == redis.Nil {
		return &models.AIContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	var aiCtx models.AIContext
	if err := json.Unmarshal(data, &aiCtx); err != nil {
		return nil, fmt.Errorf("decode context: %w", err)
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, aiCtx *models.AIContext) error {
	aiCtx.History = trimHistory(aiCtx.History)
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, aiContextPrefix+userID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, aiContextPrefix+userID).Err()
}

// trimHistory keeps the most recent MaxHistory messages.
func trimHistory(history []models.ChatMessage) []models.ChatMessage {
	if len(history) <= MaxHistory {
		return history
	}
	return history[len(history)-MaxHistory:]
}
