package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"split-wallet-engine/internal/adapter/http/middleware"
	redisStore "split-wallet-engine/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitRouter(store middleware.RateLimitStore, user string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	setUser := func(c *gin.Context) {
		if user != "" {
			c.Set(middleware.CtxUserID, user)
		}
		c.Next()
	}
	r.GET("/test", setUser, middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newRedisStore(t *testing.T) (*redisStore.RateLimitStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client), mr
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	store, _ := newRedisStore(t)
	router := setupRateLimitRouter(store, "alice")

	for i := 0; i < 3; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	store, _ := newRedisStore(t)
	router := setupRateLimitRouter(store, "alice")

	for i := 0; i < 3; i++ {
		hit(router)
	}
	w := hit(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_KeysByUser(t *testing.T) {
	store, mr := newRedisStore(t)

	alice := setupRateLimitRouter(store, "alice")
	for i := 0; i < 3; i++ {
		hit(alice)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(alice).Code)

	bob := setupRateLimitRouter(store, "bob")
	assert.Equal(t, http.StatusOK, hit(bob).Code)

	var userKeys int
	for _, k := range mr.Keys() {
		if len(k) > len("ratelimit:user:") && k[:len("ratelimit:user:")] == "ratelimit:user:" {
			userKeys++
		}
	}
	assert.Equal(t, 2, userKeys)
}

type brokenStore struct{}

func (brokenStore) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("redis down")
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	router := setupRateLimitRouter(brokenStore{}, "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(router).Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	for _, group := range []string{"splits_read", "splits_write", "payments", "payouts", "roulette", "repair", "internal"} {
		rule, ok := rules[group]
		require.True(t, ok, group)
		assert.Positive(t, rule.Limit)
		assert.Equal(t, time.Minute, rule.Window)
	}
}
