package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicehub/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Limit(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             2,
		IdleTTL:           time.Minute,
	}}
	rl := NewRateLimiter(cfg, newTestLogger())
	frozen := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	e := echo.New()
	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		require.NoError(t, rl.Limit(okHandler)(e.NewContext(req, rec)))

		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"), "buckets are per client")

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"), "bucket refills over time")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(&config.Config{}, newTestLogger())

	e := echo.New()
	for range 50 {
		rec := httptest.NewRecorder()
		require.NoError(t, rl.Limit(okHandler)(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, IdleTTL: time.Minute}}, newTestLogger())
	frozen := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	rl.allow("10.0.0.1")
	frozen = frozen.Add(30 * time.Second)
	rl.allow("10.0.0.2")

	frozen = frozen.Add(45 * time.Second)
	assert.Equal(t, 1, rl.Sweep())
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
