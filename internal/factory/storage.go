// Package factory assembles the store collections for the configured driver.
package factory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/actuli/actuli-api/internal/config"
	"github.com/actuli/actuli-api/internal/health"
	"github.com/actuli/actuli-api/internal/model"
	"github.com/actuli/actuli-api/internal/store"
	storepg "github.com/actuli/actuli-api/internal/store/postgres"
	storelite "github.com/actuli/actuli-api/internal/store/sqlite"
)

const (
	usersTable  = "app_users"
	groupsTable = "type_groups"
)

// Stores bundles the typed collections backed by one database handle.
type Stores struct {
	Users  store.Collection[model.AppUser]
	Groups store.Collection[model.TypeGroup]
	Pinger health.HealthPinger

	db *sql.DB
}

// Close releases the underlying database handle.
func (s *Stores) Close() error { return s.db.Close() }

// NewStores opens the configured driver and migrates both collections.
func NewStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	timeout := time.Duration(cfg.StoreTimeoutSeconds) * time.Second

	switch cfg.DBDriver {
	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := storepg.Migrate(ctx, db, usersTable, groupsTable); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("store ready")
		return &Stores{
			Users:  storepg.NewCollection[model.AppUser](db, usersTable, timeout),
			Groups: storepg.NewCollection[model.TypeGroup](db, groupsTable, timeout),
			Pinger: storepg.Pinger{DB: db},
			db:     db,
		}, nil

	case "sqlite":
		db, err := storelite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := storelite.Migrate(ctx, db, usersTable, groupsTable); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store ready")
		return &Stores{
			Users:  storelite.NewCollection[model.AppUser](db, usersTable, timeout),
			Groups: storelite.NewCollection[model.TypeGroup](db, groupsTable, timeout),
			Pinger: storelite.Pinger{DB: db},
			db:     db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
