package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReportCache caches serialized report payloads under a TTL. Misses are
// reported as (nil, false, nil) so callers can fall through to the database.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context, keys ...string) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache connects to Redis at addr. It returns a no-op cache
// when addr is empty or the connection fails, so reports always work without
// Redis.
func NewRedisReportCache(addr string, ttl time.Duration) ReportCache {
	if addr == "" {
		return noopReportCache{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis connection failed, continuing without report cache: %v", err)
		return noopReportCache{}
	}

	log.Println("Redis connection established")
	return &redisReportCache{client: rdb, ttl: ttl}
}

func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *redisReportCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

type noopReportCache struct{}

func (noopReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }
func (noopReportCache) Set(ctx context.Context, key string, payload []byte) error { return nil }
func (noopReportCache) Invalidate(ctx context.Context, keys ...string) error      { return nil }
