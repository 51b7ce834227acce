package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// GoRedisClient struct holds the Redis client and context
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGoRedisClient wraps client. The connection is checked with Ping by the caller.
func NewGoRedisClient(ctx context.Context, client *redis.Client) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GoRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(key string) (string, error) {
	value, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return value, err
}

// Keys lists keys matching a glob pattern.
func (r *GoRedisClient) Keys(pattern string) ([]string, error) {
	keys, err := r.client.Keys(r.ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("keys %q: %w", pattern, err)
	}
	return keys, nil
}

func (r *GoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *GoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err == nil {
		log.Println("[GoRedisClient] Connected to Redis")
	}
	return err
}

// Close releases the underlying connection pool.
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
