// Package security screens inbound requests before they reach any handler.
// It enforces a JSON content type on mutating methods, scans query and
// header values for injection fragments, and stamps browser hardening
// headers on every accepted response.
package security

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/actuli/actuli-api/internal/api/respond"
)

// sqlFragments are rejected wherever they appear in a query or header
// value, compared case-insensitively.
var sqlFragments = []string{
	"select", "drop", "insert", "update", "delete",
	"--", ";--", ";", "/*", "*/", "@@", "@",
	"char(", "nchar(", "varchar(", "nvarchar(",
	"alter", "begin", "cast(", "create", "cursor",
	"declare", "exec", "fetch", "set", "shutdown",
	"truncate", "union", "waitfor",
}

var xssFragments = []string{
	"<script>", "<iframe>", "javascript:", "onerror=", "onload=",
}

var hardeningHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-XSS-Protection":        "1; mode=block",
	"Content-Security-Policy": "default-src 'self';",
	"X-Frame-Options":         "DENY",
}

func containsFragment(value string, fragments []string) bool {
	lower := strings.ToLower(value)
	for _, f := range fragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

func suspicious(value string) bool {
	return containsFragment(value, sqlFragments) || containsFragment(value, xssFragments)
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// Middleware returns the request screening gate.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mutating(r.Method) {
			ct := strings.ToLower(r.Header.Get("Content-Type"))
			if !strings.HasPrefix(ct, "application/json") {
				respond.WriteProblem(w, http.StatusUnsupportedMediaType,
					"Unsupported Media Type", "request body must be application/json")
				return
			}
		}

		for key, values := range r.URL.Query() {
			for _, v := range values {
				if suspicious(v) {
					log.Warn().
						Str("param", key).
						Str("remote", r.RemoteAddr).
						Msg("rejected request with suspicious query value")
					respond.WriteBadRequest(w, "request contains disallowed content")
					return
				}
			}
		}

		for key, values := range r.Header {
			for _, v := range values {
				if suspicious(v) {
					log.Warn().
						Str("header", key).
						Str("remote", r.RemoteAddr).
						Msg("rejected request with suspicious header value")
					respond.WriteBadRequest(w, "request contains disallowed content")
					return
				}
			}
		}

		for k, v := range hardeningHeaders {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
