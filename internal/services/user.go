// Package services holds the application services between the HTTP
// handlers and the document store.
package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/store"
)

// UserService handles user record operations.
type UserService struct {
	users store.Collection[model.AppUser]
	log   zerolog.Logger
}

func NewUserService(users store.Collection[model.AppUser], log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// GetOrCreate returns the record for id, creating a bare one if absent.
// Store failures during the auto-create are swallowed and logged; the
// caller still receives the fresh record.
func (s *UserService) GetOrCreate(ctx context.Context, id string) (*model.AppUser, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = model.NewAppUser(id)
	if err := s.users.Add(ctx, u); err != nil {
		s.log.Error().Err(err).Str("userId", id).Msg("auto-create write failed, returning unsaved record")
	}
	return u, nil
}

// Update merges incoming into the stored record and persists the result.
func (s *UserService) Update(ctx context.Context, id string, incoming *model.AppUser) (*model.AppUser, error) {
	stored, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, id)
	}

	merged := model.MergeUser(stored, incoming)
	if err := s.users.Upsert(ctx, merged.ID, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// UpdateContact merges incoming into the stored record's contact sub-record.
func (s *UserService) UpdateContact(ctx context.Context, id string, incoming *model.Contact) (*model.AppUser, error) {
	stored, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, id)
	}

	if stored.Profile == nil {
		stored.Profile = &model.Profile{}
	}
	if stored.Profile.Contact == nil {
		stored.Profile.Contact = &model.Contact{}
	}
	model.MergeContact(stored.Profile.Contact, incoming)
	stored.MarkModified()

	if err := s.users.Upsert(ctx, stored.ID, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Delete removes the record for id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	stored, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: user %s", model.ErrNotFound, id)
	}
	return s.users.Delete(ctx, id)
}

// Create adds a new record, used by the administrative surface.
func (s *UserService) Create(ctx context.Context, u *model.AppUser) (*model.AppUser, error) {
	if u.ID == "" {
		return nil, fmt.Errorf("%w: id is required", model.ErrValidation)
	}
	u.MarkCreated()
	if err := s.users.Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns the record for id, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*model.AppUser, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, id)
	}
	return u, nil
}

// List returns every stored record.
func (s *UserService) List(ctx context.Context) ([]*model.AppUser, error) {
	return s.users.List(ctx)
}
