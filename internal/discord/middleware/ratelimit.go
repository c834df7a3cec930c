package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// MaxRequests is the maximum number of requests allowed per window
	MaxRequests int

	// Window is the time window for rate limiting
	Window time.Duration

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Store for tracking rate limits (if nil, uses in-memory)
	Store RateLimitStore
}

// RateLimitStore tracks rate limit data
type RateLimitStore interface {
	// Increment increments the counter for a key and returns the new count
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

// defaultKeyFunc uses user ID as the rate limit key
func defaultKeyFunc(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// RateLimitMiddleware applies rate limiting. A store failure lets the
// request through.
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	if config.KeyFunc == nil {
		config.KeyFunc = defaultKeyFunc
	}
	if config.Message == "" {
		config.Message = fmt.Sprintf("You're doing that too fast! Please wait %v before trying again.", config.Window)
	}
	if config.Store == nil {
		config.Store = NewMemoryRateLimitStore()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			count, err := config.Store.Increment(ctx.Context, key, config.Window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limit store failed")
				return next.Handle(ctx)
			}

			if count > config.MaxRequests {
				return &core.HandlerResult{
					Response: core.NewEphemeralResponse(config.Message),
				}, nil
			}

			return next.Handle(ctx)
		})
	}
}

// UserRateLimitMiddleware applies per-user rate limiting
func UserRateLimitMiddleware(maxRequests int, window time.Duration, store RateLimitStore) core.Middleware {
	return RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyFunc:     defaultKeyFunc,
		Store:       store,
	})
}

// MemoryRateLimitStore is an in-memory fixed window store
type MemoryRateLimitStore struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
	now       func() time.Time
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates a new in-memory store
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Increment increments the counter for a key
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	b, exists := s.buckets[key]
	if !exists || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}
	b.count++

	return b.count, nil
}

// sweep drops expired buckets at most once a minute
func (s *MemoryRateLimitStore) sweep(now time.Time) {
	if now.Before(s.nextSweep) {
		return
	}
	for key, b := range s.buckets {
		if !now.Before(b.resetAt) {
			delete(s.buckets, key)
		}
	}
	s.nextSweep = now.Add(time.Minute)
}

// RedisRateLimitStore shares fixed windows between bot replicas
type RedisRateLimitStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisRateLimitStore creates a store keeping counters under keyPrefix
func NewRedisRateLimitStore(client redis.UniversalClient, keyPrefix string) *RedisRateLimitStore {
	if client == nil {
		panic("redis client is required")
	}
	return &RedisRateLimitStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Increment counts a request and starts the window on the first one
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	fullKey := s.keyPrefix + "ratelimit:" + key

	var incr *redis.IntCmd
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		return 0, spyerr.Unavailable(err, "failed to increment rate limit")
	}

	return int(incr.Val()), nil
}
