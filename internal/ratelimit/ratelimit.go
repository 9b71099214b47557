// Package ratelimit bounds how many applications one actor may submit per
// window. Redis keeps the counters when configured; otherwise they live in
// process memory.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/YusovID/refugee-case-service/pkg/logger/sl"
	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	Allow(ctx context.Context, key string) bool
	// Window is how long a rejected caller waits at most before its count resets.
	Window() time.Duration
}

const script = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisTimeout = 250 * time.Millisecond

type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	limit  int
	window time.Duration
	prefix string
	log    *slog.Logger
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration, prefix string, log *slog.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(script),
		limit:  limit,
		window: window,
		prefix: prefix,
		log:    log,
	}
}

func (l *RedisLimiter) Window() time.Duration { return l.window }

// Allow fails open: a Redis error lets the request through.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	const op = "internal.ratelimit.RedisLimiter.Allow"

	if key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}

	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + ":" + key}, ttl, l.limit).Int64()
	if err != nil {
		l.log.Warn("rate limiter unavailable", slog.String("op", op), sl.Err(err))
		return true
	}

	return allowed == 1
}

// MemoryLimiter drops expired buckets at most once per window, so idle keys
// do not accumulate.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     int
	window    time.Duration
	nextSweep time.Time
	now       func() time.Time
}

type bucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Window() time.Duration { return l.window }

func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	if key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok || now.After(b.windowEnd) {
		l.buckets[key] = &bucket{count: 1, windowEnd: now.Add(l.window)}
		return true
	}

	if b.count >= l.limit {
		return false
	}

	b.count++

	return true
}

func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}

	for key, b := range l.buckets {
		if now.After(b.windowEnd) {
			delete(l.buckets, key)
		}
	}

	l.nextSweep = now.Add(l.window)
}
