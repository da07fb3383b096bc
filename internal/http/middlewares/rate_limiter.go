package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	log "github.com/sirupsen/logrus"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter counts requests per client IP. Limiter errors let the request
// through.
func RateLimiter(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.WithError(err).WithField("client", key).Warn("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}

// MemoryLimiter is a fixed-window limiter local to one process.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops buckets whose window has ended. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RedisLimiter is a fixed-window limiter shared by every instance that
// points at the same Redis.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowSeconds := int64(l.window / time.Second)
	if windowSeconds < 1 {
		windowSeconds = 1
	}
	slot := l.now().Unix() / windowSeconds
	redisKey := l.prefix + key + ":" + strconv.FormatInt(slot, 10)

	count, err := l.client.Do(ctx, l.client.B().Incr().Key(redisKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := l.client.B().Expire().Key(redisKey).Seconds(windowSeconds).Build()
		if err := l.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
