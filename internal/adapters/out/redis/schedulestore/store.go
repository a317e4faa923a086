// Package schedulestore keeps the dispatch calendar snapshot in Redis.
//
// The snapshot is small and read on every bucket view, so it lives under a
// single key as JSON rather than in a table.
package schedulestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/schedule"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "shipping:schedule:settings"

type RedisScheduleStore struct {
	client *redis.Client
	key    string
}

// NewClient builds a client from redis://[:password@]host[:port][/database].
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func NewRedisScheduleStore(client *redis.Client, key string) (*RedisScheduleStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisScheduleStore{client: client, key: key}, nil
}

// Load returns an empty snapshot when nothing was saved yet.
func (s *RedisScheduleStore) Load(ctx context.Context) (schedule.Settings, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return schedule.Settings{}, nil
	}
	if err != nil {
		return schedule.Settings{}, fmt.Errorf("failed to get key %s: %w", s.key, err)
	}

	var settings schedule.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return schedule.Settings{}, fmt.Errorf("failed to decode schedule snapshot: %w", err)
	}
	return settings, nil
}

func (s *RedisScheduleStore) Save(ctx context.Context, settings schedule.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode schedule snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", s.key, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *RedisScheduleStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
