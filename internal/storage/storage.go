package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

// Supported backends
const (
	BackendJSONL    = "jsonl"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// ErrNotFound is returned when deleting a date that has no entry
var ErrNotFound = errors.New("entry not found")

// Store persists the habit log and goal set.
// Implementations are used from a single goroutine.
type Store interface {
	// Init prepares the backend (directories, schema)
	Init(ctx context.Context) error
	// Load returns a snapshot of the whole habit log
	Load(ctx context.Context) (entry.Log, error)
	// Save replaces the whole habit log
	Save(ctx context.Context, log entry.Log) error
	// Put inserts or replaces the entry for e.Date
	Put(ctx context.Context, e entry.Entry) error
	// Delete removes the entry for date
	Delete(ctx context.Context, date string) error
	// LoadGoals returns the saved goals, backfilled with defaults
	LoadGoals(ctx context.Context) (goal.Goals, error)
	// SaveGoals replaces the saved goals
	SaveGoals(ctx context.Context, g goal.Goals) error
	// Clear removes all entries and goals
	Clear(ctx context.Context) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend string
	// Path is the JSONL file or SQLite database path
	Path string
	// DSN is the Postgres connection string
	DSN string
}

// Open builds the store selected by opts.Backend and initializes it
func Open(ctx context.Context, opts Options) (Store, error) {
	var s Store
	switch opts.Backend {
	case "", BackendJSONL:
		s = NewJSONLStore(opts.Path)
	case BackendSQLite:
		s = NewSQLiteStore(opts.Path)
	case BackendPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres backend requires a DSN (set storage.dsn or LIFETUNER_POSTGRES_DSN)")
		}
		s = NewPostgresStore(opts.DSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q: must be one of jsonl, sqlite, postgres", opts.Backend)
	}

	if err := s.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", backendName(opts.Backend), err)
	}
	return s, nil
}

func backendName(b string) string {
	if b == "" {
		return BackendJSONL
	}
	return b
}
