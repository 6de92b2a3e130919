package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-seat-layout/internal/config"
)

// bodyRecorder tees the response body into buf, up to limit bytes.
type bodyRecorder struct {
	http.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if !w.overflow {
		if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
			w.overflow = true
			w.buf.Reset()
		} else {
			w.buf.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// cachedResponse is what a cache entry holds.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func (r cachedResponse) replay(c echo.Context) error {
	c.Response().Header().Set("X-Cache", "HIT")
	return c.Blob(r.Status, r.ContentType, r.Body)
}

// indexKey names the set listing every cached variant of one URL path.
func indexKey(cfg config.CacheConfig, path string) string {
	return cfg.Prefix + ":idx:" + path
}

// cacheKeyFrom builds "<prefix>:<path>:<digest>".  The concrete path is
// used, not the route pattern, so /halls/1 and /halls/2 never share an
// entry.  Strategies without "user" must only front responses that are the
// same for every caller.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	vary := r.Method
	switch strings.ToLower(cfg.KeyStrategy) {
	case "path":
	case "path_query":
		vary += "|q=" + r.URL.RawQuery
	case "user_path":
		vary += "|u=" + identityKey(c)
	default: // user_path_query
		vary += "|u=" + identityKey(c) + "|q=" + r.URL.RawQuery
	}
	sum := sha1.Sum([]byte(vary))
	return cfg.Prefix + ":" + r.URL.Path + ":" + hex.EncodeToString(sum[:])
}

// NewRedisCache serves repeated reads of the configured methods from
// Redis.  Only complete 200 responses are stored; X-Cache tells HIT from
// MISS.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, logger *log.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	if logger == nil {
		logger = log.Default()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[c.Request().Method] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKeyFrom(cfg, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var hit cachedResponse
				if json.Unmarshal(raw, &hit) == nil {
					return hit.replay(c)
				}
			} else if !errors.Is(err, redis.Nil) {
				logger.Warn("cache read failed", "key", key, "err", err)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status != http.StatusOK || rec.overflow {
				return nil
			}

			raw, err := json.Marshal(cachedResponse{
				Status:      http.StatusOK,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
			})
			if err != nil {
				return nil
			}
			idx := indexKey(cfg, c.Request().URL.Path)
			wctx := context.WithoutCancel(ctx)
			_, err = rdb.TxPipelined(wctx, func(p redis.Pipeliner) error {
				p.Set(wctx, key, raw, ttl)
				p.SAdd(wctx, idx, key)
				p.Expire(wctx, idx, ttl)
				return nil
			})
			if err != nil {
				logger.Warn("cache write failed", "key", key, "err", err)
			}
			return nil
		}
	}
}

// NewCachePurge drops every cached variant of the request path once the
// wrapped write handler answers 2xx.
func NewCachePurge(cfg config.CacheConfig, rdb *redis.Client, logger *log.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	if logger == nil {
		logger = log.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			if st := c.Response().Status; st < 200 || st > 299 {
				return nil
			}
			path := c.Request().URL.Path
			if err := purgePath(context.WithoutCancel(c.Request().Context()), rdb, indexKey(cfg, path)); err != nil {
				logger.Warn("cache purge failed", "path", path, "err", err)
			}
			return nil
		}
	}
}

func purgePath(ctx context.Context, rdb *redis.Client, idx string) error {
	keys, err := rdb.SMembers(ctx, idx).Result()
	if err != nil {
		return err
	}
	return rdb.Del(ctx, append(keys, idx)...).Err()
}
