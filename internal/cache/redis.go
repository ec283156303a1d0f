package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCache stores bodies in Redis and falls back to memory when Redis
// is absent or failing
type RedisCache struct {
	client   *redis.Client
	ttl      time.Duration
	logger   *logrus.Logger
	fallback *MemoryCache
}

// NewRedisClient creates a Redis client from a redis:// URL
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// NewRedisCache creates a Redis backed cache. A nil client keeps
// everything in memory.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RedisCache{
		client:   client,
		ttl:      ttl,
		logger:   logger,
		fallback: NewMemoryCache(ttl),
	}
}

// Get retrieves a cached body
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	// Try Redis first if available
	if c.client != nil {
		val, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache hit (Redis)")
			return val, true
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis get error, falling back to memory cache")
		}
	}

	val, ok := c.fallback.Get(ctx, key)
	if ok {
		c.logger.WithField("key", key).Debug("Cache hit (memory)")
	}
	return val, ok
}

// Set stores a body with the cache TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if c.client != nil {
		err := c.client.Set(ctx, key, value, c.ttl).Err()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	return c.fallback.Set(ctx, key, value)
}

// Ping reports whether Redis is reachable; it is nil when running on memory only
func (c *RedisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool
func (c *RedisCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
