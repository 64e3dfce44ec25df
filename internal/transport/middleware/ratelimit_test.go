package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, rps float64, burst int) (*RateLimiter, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rl := newRateLimiter(rps, burst, time.Minute, clock)
	t.Cleanup(rl.Stop)
	return rl, clock
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.RemoteAddr = addr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsBurst(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 10)
	handler := rl.Middleware()(okHandler())

	for i := range 10 {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 5)
	handler := rl.Middleware()(okHandler())

	for range 5 {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code)
	}

	rec := hit(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SameIPDifferentPorts(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 1)
	handler := rl.Middleware()(okHandler())

	assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1111").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "1.2.3.4:2222").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 2)
	handler := rl.Middleware()(okHandler())

	for range 2 {
		hit(handler, "1.1.1.1:1234")
	}
	assert.Equal(t, http.StatusOK, hit(handler, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl, clock := newTestLimiter(t, 1, 3)
	handler := rl.Middleware()(okHandler())

	for range 3 {
		hit(handler, "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234").Code)

	clock.Advance(1100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl, clock := newTestLimiter(t, 1, 1)
	handler := rl.Middleware()(okHandler())

	hit(handler, "4.4.4.4:1")
	assert.Equal(t, 1, rl.size())

	rl.evictIdle(clock.Now().Add(idleTTL + time.Second))
	assert.Equal(t, 0, rl.size())
}
