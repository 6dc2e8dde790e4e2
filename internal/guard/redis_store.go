package guard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "login_attempts:"

// RedisStore shares attempt records across instances through Redis.
// Records carry a TTL so abandoned lockouts age out server-side.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates an attempt store backed by the given Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, identity string) (*Attempt, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+identity).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attempt record: %w", err)
	}

	var attempt Attempt
	if err := json.Unmarshal(data, &attempt); err != nil {
		return nil, fmt.Errorf("failed to decode attempt record: %w", err)
	}

	return &attempt, nil
}

func (s *RedisStore) Put(ctx context.Context, identity string, attempt Attempt, ttl time.Duration) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to encode attempt record: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+identity, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write attempt record: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, identity string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+identity).Err(); err != nil {
		return fmt.Errorf("failed to delete attempt record: %w", err)
	}
	return nil
}
