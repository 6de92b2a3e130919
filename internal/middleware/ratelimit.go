package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-seat-layout/internal/config"
)

// gcraScript is a generic cell rate limiter.  The key holds the
// theoretical arrival time (ms) of the next request; a request is allowed
// while that time is less than burst*every ahead of now.
// Returns {allowed, remaining, retry_after_ms}.
var gcraScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local every = tonumber(ARGV[2])
local burst = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local tat = tonumber(redis.call('GET', KEYS[1])) or now
if tat < now then
    tat = now
end

local allow_at = tat + every - burst * every
if now < allow_at then
    return {0, 0, allow_at - now}
end

tat = tat + every
redis.call('SET', KEYS[1], tat, 'PX', ttl)
return {1, math.floor((now - (tat - burst * every)) / every), 0}
`)

// NewTokenBucket throttles layout edits per key (see buildRateKey).  Without
// a client or when disabled it passes everything through; Redis failures
// are logged and the request is let through.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client, logger *log.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	if logger == nil {
		logger = log.Default()
	}
	limit := strconv.Itoa(cfg.Burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := buildRateKey(cfg, c)
			vals, err := gcraScript.Run(c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(), cfg.Every.Milliseconds(), cfg.Burst, cfg.TTL.Milliseconds()).Result()
			if err != nil {
				logger.Warn("rate limit unavailable", "key", key, "err", err)
				return next(c)
			}
			allowed, remaining, retryMs, ok := parseBucketResult(vals)
			if !ok {
				logger.Warn("rate limit script returned garbage", "key", key, "result", vals)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			if cfg.Debug {
				h.Set("X-RateLimit-Key", key)
			}
			if allowed {
				return next(c)
			}

			secs := (retryMs + 999) / 1000
			h.Set("Retry-After", strconv.FormatInt(secs, 10))
			if cfg.Debug {
				logger.Debug("rate limited", "key", key, "retry_ms", retryMs)
			}
			return c.JSON(http.StatusTooManyRequests, map[string]any{
				"error":       "too many layout edits, slow down",
				"retry_after": secs,
			})
		}
	}
}

func parseBucketResult(vals any) (allowed bool, remaining, retryMs int64, ok bool) {
	arr, isArr := vals.([]any)
	if !isArr || len(arr) != 3 {
		return false, 0, 0, false
	}
	var n [3]int64
	for i, v := range arr {
		if n[i], ok = v.(int64); !ok {
			return false, 0, 0, false
		}
	}
	return n[0] == 1, n[1], n[2], true
}

// buildRateKey scopes the bucket.  Unauthenticated callers fall back to
// their IP so they never share the "anon" bucket.
func buildRateKey(cfg config.RateLimitConfig, c echo.Context) string {
	who := "user:" + identityKey(c)
	if _, ok := UserID(c); !ok || strings.EqualFold(cfg.KeyStrategy, "ip") {
		who = "ip:" + c.RealIP()
	}
	if strings.EqualFold(cfg.KeyStrategy, "user_route") || cfg.KeyStrategy == "" {
		return cfg.Prefix + ":" + who + ":" + c.Request().Method + " " + c.Path()
	}
	return cfg.Prefix + ":" + who
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}
