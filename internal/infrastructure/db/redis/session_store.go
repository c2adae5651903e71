package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// RedisSessionStore persists one session per client under an opaque ID.
// Key format: session:<id>, value is the JSON-encoded session data.
// Expiry is enforced by the key TTL; reads refresh it (sliding window).
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client. A non-positive ttl falls
// back to defaultSessionTTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*domain.SessionData, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data domain.SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}

	// Sliding expiry: an active client keeps its session alive.
	_ = s.client.Expire(ctx, s.key(sessionID), s.ttl).Err()

	return &data, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, data domain.SessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Invalidate deletes the session. Deleting an absent key succeeds.
func (s *RedisSessionStore) Invalidate(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
