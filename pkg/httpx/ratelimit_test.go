package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/bypath/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("allows up to burst then rejects", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for range 3 {
			rec := doRequest(h, "10.0.0.1:1234")
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := doRequest(h, "10.0.0.1:1234")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("limits are per key", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1234").Code)
		require.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:1234").Code)
		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.2:1234").Code)
	})

	t.Run("allows requests when key cannot be extracted", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(config, empty)(okHandler())

		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1234").Code)
		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1234").Code)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	t.Run("prefers x-forwarded-for", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		require.Equal(t, "203.0.113.7", httpx.IPKeyExtractor(req))
	})

	t.Run("falls back to remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:5678"
		require.Equal(t, "10.0.0.9", httpx.IPKeyExtractor(req))
	})
}
