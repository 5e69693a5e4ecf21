package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/store"
)

// Run exercises a compliance suite against a user-record collection.
// Implementations should provide a clean, isolated collection from makeCollection.
func Run(t *testing.T, makeCollection func(t *testing.T) store.Collection[model.AppUser]) {
	t.Helper()

	c := makeCollection(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()

	// Add then Get returns an equivalent record.
	u := model.NewAppUser(userID)
	name := "Test User"
	u.Name = &name
	if err := c.Add(ctx, u); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := c.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != userID || got.Name == nil || *got.Name != name {
		t.Fatalf("Get after Add: got=%+v", got)
	}

	// Add with an existing id conflicts.
	if err := c.Add(ctx, model.NewAppUser(userID)); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("Add duplicate: want ErrConflict, got %v", err)
	}

	// Blank identity is rejected before dispatch.
	if err := c.Add(ctx, &model.AppUser{}); !errors.Is(err, store.ErrInvalidItem) {
		t.Fatalf("Add blank id: want ErrInvalidItem, got %v", err)
	}
	if err := c.Upsert(ctx, "  ", model.NewAppUser(userID)); !errors.Is(err, store.ErrInvalidItem) {
		t.Fatalf("Upsert blank id: want ErrInvalidItem, got %v", err)
	}

	// Absence is an empty result, not an error.
	if got, err := c.Get(ctx, "u-"+uuid.New().String()); err != nil || got != nil {
		t.Fatalf("Get absent: got=%v err=%v", got, err)
	}

	// List contains the added record.
	lst, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, item := range lst {
		if item.ID == userID {
			found = true
		}
	}
	if !found {
		t.Fatalf("List does not contain %s (n=%d)", userID, len(lst))
	}

	// Upsert replaces unconditionally.
	replaced := model.NewAppUser(userID)
	newName := "Replaced User"
	replaced.Name = &newName
	if err := c.Upsert(ctx, userID, replaced); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	if got, err := c.Get(ctx, userID); err != nil || got == nil || got.Name == nil || *got.Name != newName {
		t.Fatalf("Get after Upsert: got=%+v err=%v", got, err)
	}

	// Upsert also creates.
	otherID := "u-" + uuid.New().String()
	if err := c.Upsert(ctx, otherID, model.NewAppUser(otherID)); err != nil {
		t.Fatalf("Upsert create: %v", err)
	}

	// Delete of an absent id does not raise.
	if err := c.Delete(ctx, "u-"+uuid.New().String()); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	// Delete then Get is absent.
	if err := c.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, err := c.Get(ctx, userID); err != nil || got != nil {
		t.Fatalf("Get after Delete: got=%v err=%v", got, err)
	}
}
