package security

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestContentTypeGate(t *testing.T) {
	h := Middleware(passthrough())

	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "Application/JSON")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// GET carries no body and is exempt from the content-type check.
	req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInjectionQueryRejected(t *testing.T) {
	h := Middleware(passthrough())

	req := httptest.NewRequest(http.MethodGet, "/api/users?filter="+url.QueryEscape("1 OR 1=1 --"), nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInjectionHeaderRejected(t *testing.T) {
	h := Middleware(passthrough())

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("X-Custom", "<script>alert(1)</script>")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHardeningHeadersStamped(t *testing.T) {
	h := Middleware(passthrough())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "default-src 'self';", rr.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}
