// Package sqlite backs store.Collection with one document table per
// collection. It is the in-memory substitute for Postgres: the default
// ":memory:" path needs no external service, which is what the tests and
// local development run against.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite3 "modernc.org/sqlite"

	"github.com/actuli/actuli-api/internal/store"
)

// Open opens (or creates) a SQLite database at the given path, or an
// in-memory database for ":memory:". WAL journal mode is enabled for file
// databases.
func Open(path string) (*sql.DB, error) {
	if path == ":memory:" {
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			return nil, err
		}
		// The pool would otherwise hand each connection its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the document tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB, tables ...string) error {
	for _, table := range tables {
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id  TEXT PRIMARY KEY,
            doc TEXT NOT NULL
        )`, table)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}
	return nil
}

// Pinger exposes connectivity probing for the health checker.
type Pinger struct{ DB *sql.DB }

func (p Pinger) HealthPing(ctx context.Context) error { return p.DB.PingContext(ctx) }

// Collection is a store.Collection over one document table.
type Collection[T store.Document] struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

// NewCollection wires a collection to its table. Every call runs under a
// deadline of timeout; zero means 5s.
func NewCollection[T store.Document](db *sql.DB, table string, timeout time.Duration) *Collection[T] {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Collection[T]{db: db, table: table, timeout: timeout}
}

func (c *Collection[T]) Add(ctx context.Context, item *T) error {
	id := (*item).DocumentID()
	if strings.TrimSpace(id) == "" {
		return store.ErrInvalidItem
	}
	body, err := json.Marshal(item)
	if err != nil {
		return err
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()
	_, err = c.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (?, ?)`, c.table), id, string(body))
	if err != nil {
		if isConstraintViolation(err) {
			return store.ErrConflict
		}
		return unavailable(err)
	}
	return nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	var body string
	row := c.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = ?`, c.table), id)
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable(err)
	}

	out := new(T)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT doc FROM %s`, c.table))
	if err != nil {
		return nil, unavailable(err)
	}
	defer func() { _ = rows.Close() }()

	var out []*T
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, unavailable(err)
		}
		item := new(T)
		if err := json.Unmarshal([]byte(body), item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return out, nil
}

func (c *Collection[T]) Upsert(ctx context.Context, id string, item *T) error {
	if strings.TrimSpace(id) == "" {
		return store.ErrInvalidItem
	}
	body, err := json.Marshal(item)
	if err != nil {
		return err
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()
	_, err = c.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (?, ?)
            ON CONFLICT (id) DO UPDATE SET doc = excluded.doc`, c.table), id, string(body))
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// Delete removes the document. A missing id is a no-op, not an error.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, c.table), id)
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (c *Collection[T]) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// isConstraintViolation reports SQLITE_CONSTRAINT and its extended codes.
func isConstraintViolation(err error) bool {
	var se *sqlite3.Error
	return errors.As(err, &se) && se.Code()&0xff == 19
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
}
