// Package redis implements audit.Store on a Redis list for
// high-throughput ephemeral audit trails. Records are JSON-encoded and
// pushed to the head of a single list, so LRANGE returns newest first.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	s := redisstore.New(client, redisstore.WithMaxLen(10000))
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/xraph/portal/audit"
)

// Compile-time interface check.
var _ audit.Store = (*Store)(nil)

// defaultKey is the Redis list key holding the trail.
const defaultKey = "portal:audit"

// Option configures the Store.
type Option func(*Store)

// WithKey overrides the Redis list key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithMaxLen caps the trail length; older records are trimmed from the
// tail on append. Zero means unbounded.
func WithMaxLen(n int64) Option {
	return func(s *Store) { s.maxLen = n }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store implements audit.Store backed by Redis.
type Store struct {
	client redis.Cmdable
	key    string
	maxLen int64
	logger *slog.Logger
}

// New creates a Redis-backed audit store. The caller owns the Redis
// client lifecycle.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{
		client: client,
		key:    defaultKey,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Client returns the underlying Redis client.
func (s *Store) Client() redis.Cmdable { return s.client }

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Append implements audit.Store.
func (s *Store) Append(ctx context.Context, rec *audit.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("portal/audit/redis: marshal record: %w", err)
	}
	if err := s.client.LPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("portal/audit/redis: lpush: %w", err)
	}
	if s.maxLen > 0 {
		if err := s.client.LTrim(ctx, s.key, 0, s.maxLen-1).Err(); err != nil {
			return fmt.Errorf("portal/audit/redis: ltrim: %w", err)
		}
	}
	return nil
}

// List implements audit.Store, returning records newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*audit.Record, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := s.client.LRange(ctx, s.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("portal/audit/redis: lrange: %w", err)
	}
	out := make([]*audit.Record, 0, len(raw))
	for _, item := range raw {
		var rec audit.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			s.logger.Warn("portal/audit/redis: skipping malformed record",
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, &rec)
	}
	return out, nil
}
