package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/actuli/actuli-api/internal/api/respond"
)

type contextKey string

const principalKey contextKey = "principal"

// RequireAuth resolves the caller once at the request boundary and rejects
// requests without a resolvable principal. Handlers downstream read the
// result with PrincipalFrom and pass it on explicitly.
func RequireAuth(authorizer Authorizer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractBearer(r)
			if err != nil {
				respond.WriteProblem(w, http.StatusUnauthorized, "Unauthorized Access", err.Error())
				return
			}

			principal, err := authorizer.Authorize(r.Context(), token)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("token rejected")
				respond.WriteProblem(w, http.StatusUnauthorized, "Unauthorized Access", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the principal resolved by RequireAuth.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}
