package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindow is the cross-instance variant of the fixed window, for
// deployments where per-instance counting is too coarse. INCR + EXPIRE
// on first hit gives the same window semantics as the in-memory limiter;
// Redis TTL replaces the sweep. Fails open when Redis is unreachable:
// availability of the pipeline wins over strict fairness.
type RedisWindow struct {
	client *redis.Client
	window time.Duration
	max    int
	prefix string
	onWarn func(msg string, err error)
}

func NewRedisWindow(client *redis.Client, window time.Duration, max int, onWarn func(string, error)) *RedisWindow {
	if onWarn == nil {
		onWarn = func(string, error) {}
	}
	return &RedisWindow{
		client: client,
		window: window,
		max:    max,
		prefix: "ratelimit:",
		onWarn: onWarn,
	}
}

func (l *RedisWindow) Admit(identity string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := l.prefix + identity
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.onWarn("rate limit check failed, admitting", err)
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.onWarn("failed to set rate window expiry", err)
		}
	}
	return count <= int64(l.max)
}

// Reset removes all rate windows. For tests against a live Redis.
func (l *RedisWindow) Reset() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := l.client.Scan(ctx, 0, fmt.Sprintf("%s*", l.prefix), 0).Iterator()
	for iter.Next(ctx) {
		l.client.Del(ctx, iter.Val())
	}
}
