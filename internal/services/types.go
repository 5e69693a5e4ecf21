package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/store"
)

// typesSource is the authoritative reference-data file the refresh
// operation reconciles the store against.
//
//go:embed types.json
var typesSource []byte

// TypeService handles the reference-data catalog.
type TypeService struct {
	groups store.Collection[model.TypeGroup]
	log    zerolog.Logger
}

func NewTypeService(groups store.Collection[model.TypeGroup], log zerolog.Logger) *TypeService {
	return &TypeService{groups: groups, log: log}
}

// List returns every catalog group.
func (s *TypeService) List(ctx context.Context) ([]*model.TypeGroup, error) {
	return s.groups.List(ctx)
}

// Get returns the group for id, or ErrNotFound.
func (s *TypeService) Get(ctx context.Context, id string) (*model.TypeGroup, error) {
	g, err := s.groups.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: type group %s", model.ErrNotFound, id)
	}
	return g, nil
}

// Create adds a new group, assigning an id when the caller left it blank.
func (s *TypeService) Create(ctx context.Context, g *model.TypeGroup) (*model.TypeGroup, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.MarkUpdated()
	if err := s.groups.Add(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update replaces the group for id wholesale.
func (s *TypeService) Update(ctx context.Context, id string, g *model.TypeGroup) (*model.TypeGroup, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	stored, err := s.groups.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: type group %s", model.ErrNotFound, id)
	}

	g.ID = id
	g.MarkUpdated()
	if err := s.groups.Upsert(ctx, id, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes the group for id.
func (s *TypeService) Delete(ctx context.Context, id string) error {
	stored, err := s.groups.Get(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: type group %s", model.ErrNotFound, id)
	}
	return s.groups.Delete(ctx, id)
}

// Refresh reconciles the store against the embedded source file. Each
// source group replaces the stored group with the same name, keeping the
// stored id; names not yet in the store become new groups. Groups that
// exist only in the store are left alone.
func (s *TypeService) Refresh(ctx context.Context) ([]*model.TypeGroup, error) {
	var source []*model.TypeGroup
	if err := json.Unmarshal(typesSource, &source); err != nil {
		return nil, fmt.Errorf("parse embedded type catalog: %w", err)
	}

	existing, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*model.TypeGroup, len(existing))
	for _, g := range existing {
		byName[g.Name] = g
	}

	out := make([]*model.TypeGroup, 0, len(source))
	for _, g := range source {
		if prev, ok := byName[g.Name]; ok {
			g.ID = prev.ID
		} else {
			g.ID = uuid.NewString()
		}
		g.MarkUpdated()
		if err := s.groups.Upsert(ctx, g.ID, g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	s.log.Info().Int("groups", len(out)).Msg("type catalog refreshed")
	return out, nil
}
