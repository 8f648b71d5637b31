package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string, ctx context.Context) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.RemoteAddr = remoteAddr
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitByIP(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := RateLimitByIP(cfg)(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", nil).Code)
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", nil).Code)

	rec := doRequest(t, h, "10.0.0.1:1234", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	// A different address has its own bucket.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.2:1234", nil).Code)
}

func TestRateLimitHonoursForwardedFor(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := RateLimitByIP(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code, "same forwarded client shares the bucket")
}

func TestRateLimitByUserPrefersSubject(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := RateLimitByUser(cfg)(okHandler())

	alice := context.WithValue(context.Background(), CtxKeyUserID, "subject-alice")
	bob := context.WithValue(context.Background(), CtxKeyUserID, "subject-bob")

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", alice).Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.1:1234", alice).Code)

	// A different subject from the same address is not affected.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", bob).Code)
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 10, Window: 100 * time.Millisecond, Burst: 1}
	h := RateLimitByIP(cfg)(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", nil).Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.1:1234", nil).Code)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.1:1234", nil).Code)
}
