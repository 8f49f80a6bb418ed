package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/pkg/cache"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/pkg/middleware"
)

// memCache é um cache.Client em memória para os testes do rate limiter.
type memCache struct {
	mu       sync.Mutex
	counters map[string]int64
	ttls     map[string]time.Duration
	fail       bool
	failExpire bool
}

var _ cache.Client = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{counters: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(context.Context, string) (string, error) { return "", cache.ErrCacheMiss }
func (c *memCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (c *memCache) Delete(context.Context, string) error { return nil }

func (c *memCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return 0, errors.New("redis down")
	}
	c.counters[key]++
	return c.counters[key], nil
}

func (c *memCache) Expire(_ context.Context, key string, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failExpire {
		return errors.New("redis timeout")
	}
	c.ttls[key] = d
	return nil
}

func (c *memCache) TTL(_ context.Context, key string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.ttls[key]; ok {
		return d, nil
	}
	return -1, nil
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	c := newMemCache()
	h := middleware.RateLimiter(c, 2, time.Minute, logger.NewNop())(okHandler)

	first := hit(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)

	blocked := hit(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	assert.Empty(t, blocked.Body.String())

	// Outro IP tem o próprio contador.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1234").Code)

	assert.Equal(t, time.Minute, c.ttls["rate-limit:10.0.0.1"])
}

func TestRateLimiter_CacheDownLetsRequestThrough(t *testing.T) {
	c := newMemCache()
	c.fail = true
	h := middleware.RateLimiter(c, 1, time.Minute, logger.NewNop())(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
}

func TestRateLimiter_RepairsMissingTTL(t *testing.T) {
	c := newMemCache()
	c.failExpire = true
	h := middleware.RateLimiter(c, 1, time.Minute, logger.NewNop())(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
	_, hasTTL := c.ttls["rate-limit:10.0.0.1"]
	assert.False(t, hasTTL)

	c.failExpire = false
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1234").Code)
	assert.Equal(t, time.Minute, c.ttls["rate-limit:10.0.0.1"])
}
