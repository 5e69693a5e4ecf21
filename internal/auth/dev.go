package auth

import (
	"context"
	"errors"
	"strings"
)

const (
	// DevUserKeyPrefix marks a local-development delegated token; the
	// remainder of the token is taken as the subject id.
	DevUserKeyPrefix = "sk_dev_"

	// DevAppKeyPrefix marks a local-development application token.
	DevAppKeyPrefix = "sk_app_"
)

// DevAuthorizer resolves fixed-prefix development tokens. It stands in for
// the external identity provider in local development and tests only.
type DevAuthorizer struct{}

// NewDevAuthorizer creates a DevAuthorizer.
func NewDevAuthorizer() *DevAuthorizer { return &DevAuthorizer{} }

// Authorize resolves sk_dev_<subject> to a delegated principal and
// sk_app_<name> to an application principal.
func (a *DevAuthorizer) Authorize(ctx context.Context, token string) (*Principal, error) {
	switch {
	case strings.HasPrefix(token, DevUserKeyPrefix):
		subject := strings.TrimPrefix(token, DevUserKeyPrefix)
		if subject == "" {
			return nil, errors.New("dev token carries no subject")
		}
		return &Principal{ID: subject}, nil
	case strings.HasPrefix(token, DevAppKeyPrefix):
		name := strings.TrimPrefix(token, DevAppKeyPrefix)
		if name == "" {
			return nil, errors.New("dev app token carries no name")
		}
		return &Principal{ID: name, IsApp: true}, nil
	}
	return nil, errors.New("unrecognized token for local development")
}
