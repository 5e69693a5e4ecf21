// Package validate holds field-level checks shared by the HTTP handlers.
// All errors wrap model.ErrValidation so the boundary maps them to 400.
package validate

import (
	"fmt"
	"regexp"

	"github.com/actuli/actuli-api/internal/model"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NonEmpty validates that a required string field is present.
func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	return nil
}

// Email validates an optional email field; nil and empty pass.
func Email(v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	if len(*v) > 320 || !emailRx.MatchString(*v) {
		return fmt.Errorf("%w: invalid email", model.ErrValidation)
	}
	return nil
}

// MaxLen validates an optional field against a byte limit.
func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("%w: %s exceeds %d characters", model.ErrValidation, field, limit)
	}
	return nil
}
