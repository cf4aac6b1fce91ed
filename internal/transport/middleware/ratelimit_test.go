package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func doLimitedRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/readings", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(okHandler())

	for i := range 10 {
		rec := doLimitedRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(5)(okHandler())

	for range 5 {
		rec := doLimitedRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doLimitedRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_KeyedByIPNotPort(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())

	doLimitedRequest(handler, "1.1.1.1:1000")
	doLimitedRequest(handler, "1.1.1.1:2000")

	// Same IP from a third port is still over the shared limit.
	rec := doLimitedRequest(handler, "1.1.1.1:3000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different IP has its own bucket.
	rec = doLimitedRequest(handler, "2.2.2.2:5678")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := rl.Limit(60)(okHandler())

	for range 60 {
		doLimitedRequest(handler, "3.3.3.3:1234")
	}

	time.Sleep(1100 * time.Millisecond)

	rec := doLimitedRequest(handler, "3.3.3.3:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}
