package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventpoll/internal/domain"
)

const keyPrefix = "poll:"

// RedisClient is the subset of *redis.Client the poll cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisConfig holds connection settings for NewRedisClient.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

type redisPollCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisPollCache stores polls as JSON under "poll:<eventID>" for ttl.
func NewRedisPollCache(client RedisClient, ttl time.Duration) domain.PollCache {
	return &redisPollCache{client: client, ttl: ttl}
}

func (c *redisPollCache) Get(ctx context.Context, eventID string) (*domain.Poll, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+eventID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var poll domain.Poll
	if err := json.Unmarshal(raw, &poll); err != nil {
		return nil, false, fmt.Errorf("decode cached poll: %w", err)
	}
	return &poll, true, nil
}

func (c *redisPollCache) Set(ctx context.Context, eventID string, poll *domain.Poll) error {
	raw, err := json.Marshal(poll)
	if err != nil {
		return fmt.Errorf("encode poll: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+eventID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisPollCache) Invalidate(ctx context.Context, eventID string) error {
	if err := c.client.Del(ctx, keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

type noopPollCache struct{}

// NewNoopPollCache returns a cache that never hits. Used when Redis is not configured.
func NewNoopPollCache() domain.PollCache {
	return noopPollCache{}
}

func (noopPollCache) Get(context.Context, string) (*domain.Poll, bool, error) {
	return nil, false, nil
}

func (noopPollCache) Set(context.Context, string, *domain.Poll) error {
	return nil
}

func (noopPollCache) Invalidate(context.Context, string) error {
	return nil
}
