package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
	"github.com/kioskhub/dashboard/backend/internal/testhelpers"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterPerHousehold(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := testhelpers.SetupRedis(t)
	rl := middleware.NewGenerateRateLimiter(client, 2)

	r := gin.New()
	r.POST("/households/:household/generate", rl.PerHousehold(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(household string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/households/"+household+"/generate", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, do("home").Code)
	w := do("home")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, do("home").Code)

	// other households have their own budget
	assert.Equal(t, http.StatusOK, do("cabin").Code)

	remaining, reset, err := rl.GetRemainingRequests(context.Background(), "cabin")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.True(t, reset.After(time.Now()))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	rl := middleware.NewGenerateRateLimiter(client, 1)

	r := gin.New()
	r.POST("/households/:household/generate", rl.PerHousehold(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/households/home/generate", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}
