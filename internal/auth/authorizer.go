// Package auth resolves the caller identity carried by a bearer token.
// Token verification itself (signature, issuer, expiry) belongs to an
// external identity provider; this package only maps a verified token to a
// Principal once per request, at the boundary. Everything past the boundary
// receives the Principal explicitly.
package auth

import "context"

// Principal is the resolved caller of one request.
type Principal struct {
	// ID is the identity provider's subject id. Self-service records are
	// keyed by it.
	ID string `json:"id"`

	// IsApp marks an application-level (non-delegated) token. App callers
	// are not scoped to their own record.
	IsApp bool `json:"isApp"`
}

// Authorizer maps a bearer token to the principal it represents.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*Principal, error)
}
