package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a Redis-backed cache for provider responses. Values are
// JSON-encoded. A nil client disables caching rather than failing
// requests, matching how the service tolerates a missing Redis.
type Store struct {
	client *redis.Client
}

// NewStore wraps the go-redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get loads and decodes a cached value. The bool reports a hit.
func (s *Store) Get(ctx context.Context, key string, out any) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set encodes and stores a value with the given TTL.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}
