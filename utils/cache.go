// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eventify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs per-user carts.
	CacheClient *redis.Client
	// AIContextCacheClient holds assistant conversation history.
	AIContextCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every Redis client used by the service.
func InitRedis() {
	GetCacheClient()
	GetAIContextCacheClient()
}

// GetCacheClient returns the cart cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetAIContextCacheClient returns the client storing conversation history.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIDB, "AI Context")
	}
	return AIContextCacheClient
}

// RedisClients lists the initialized clients, for health checks.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, AIContextCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
