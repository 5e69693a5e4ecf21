package store

import "errors"

var (
	// ErrConflict reports an Add with an id that already exists.
	ErrConflict = errors.New("store: id already exists")

	// ErrInvalidItem reports a write whose item carries a blank identity.
	ErrInvalidItem = errors.New("store: item has no id")

	// ErrUnavailable reports a transient failure reaching the underlying
	// service. Callers may retry.
	ErrUnavailable = errors.New("store: unavailable")
)
