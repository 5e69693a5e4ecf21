// Package store defines the document-collection contract the services
// persist through. Implementations live under internal/store/<driver>/
// (postgres, sqlite) and hold one JSON document per row, keyed by the
// document's own id.
package store

import "context"

// Document is implemented by every stored type. The accessor replaces
// runtime reflection on an id field: a type without an explicit identity
// cannot be stored.
type Document interface {
	DocumentID() string
}

// Collection is a single logical collection of documents of one type.
//
// Get returns (nil, nil) when no document exists for the id; absence is a
// normal empty result, not an error. Delete of an absent id is a silent
// no-op. Add fails with ErrConflict when the id already exists; Add and
// Upsert fail with ErrInvalidItem when the identity is blank. Any operation
// may fail with ErrUnavailable when the underlying service is unreachable or
// the per-call deadline expires; callers may retry.
type Collection[T Document] interface {
	Add(ctx context.Context, item *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Upsert(ctx context.Context, id string, item *T) error
	Delete(ctx context.Context, id string) error
}
