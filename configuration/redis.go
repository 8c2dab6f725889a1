package configuration

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client used for the doctor directory cache. The
// server runs without it when REDIS_ADDR is unset.
type Cache struct {
	client *redis.Client
}

// NewCache connects to redis and verifies the connection with a ping.
func NewCache(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Network: "tcp",
		Addr:    addr,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

// Set stores a key with an expiration time.
func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	return c.client.Set(context.Background(), key, value, expiration).Err()
}

// Get returns the value stored at key, or an error on a miss.
func (c *Cache) Get(key string) (string, error) {
	return c.client.Get(context.Background(), key).Result()
}
