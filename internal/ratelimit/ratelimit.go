package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter on redis, keyed per caller. A nil Limiter
// allows everything so the server runs without redis.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func New(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	if client == nil {
		return nil
	}
	return &Limiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

// Allow counts one attempt for the key and reports whether it is still within
// the window limit. Redis failures fail open: losing the limiter must not
// lock every admin out.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}

	redisKey := l.prefix + ":" + key
	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}
	return n <= l.limit
}
