package db

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// ErrClientClosed is returned by the mock client after Close.
var ErrClientClosed = errors.New("redis: client is closed")

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	// Set stores value under key. A zero ttl keeps it forever.
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	// Close releases the connection. The client is unusable afterwards.
	Close() error
}
