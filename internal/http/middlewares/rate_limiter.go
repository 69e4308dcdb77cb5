package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"taskflow.com/taskflow/internal/auth"
)

// RateLimiter allows limit requests per window for each caller. Callers are
// keyed by authenticated user id and fall back to the client IP.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return RateLimiterWithKey(limit, window, CallerKey)
}

// IPRateLimiter keys on the client IP only, so it can run before
// authentication.
func IPRateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return RateLimiterWithKey(limit, window, IPKey)
}

func RateLimiterWithKey(limit int, window time.Duration, keyOf func(echo.Context) string) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastPrune time.Time
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit <= 0 {
				return next(c)
			}

			now := time.Now()
			key := keyOf(c)

			mu.Lock()
			if now.Sub(lastPrune) > window {
				for k, b := range buckets {
					if now.Sub(b.start) > window {
						delete(buckets, k)
					}
				}
				lastPrune = now
			}

			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				retryAfter := window - now.Sub(b.start)
				mu.Unlock()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

func CallerKey(c echo.Context) string {
	if p, ok := auth.FromContext(c.Request().Context()); ok && p.UserID != 0 {
		return "user:" + strconv.FormatUint(uint64(p.UserID), 10)
	}
	return IPKey(c)
}

func IPKey(c echo.Context) string {
	return "ip:" + c.RealIP()
}
