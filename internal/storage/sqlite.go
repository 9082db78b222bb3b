package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

//go:embed schema.sql
var schema string

// DatabaseFile is the default SQLite database file name
const DatabaseFile = "lifetuner.db"

const entryColumns = "date, bed_time, wake_time, mood, energy, activities, captured_at, note"

const sqliteUpsertEntry = `
	INSERT INTO entries (` + entryColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(date) DO UPDATE SET
		bed_time=excluded.bed_time,
		wake_time=excluded.wake_time,
		mood=excluded.mood,
		energy=excluded.energy,
		activities=excluded.activities,
		captured_at=excluded.captured_at,
		note=excluded.note`

// SQLiteStore keeps the habit log in a SQLite database
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore returns a store for the database at path
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and applies the schema
func (s *SQLiteStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection keeps transactions simple
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	s.db = db
	return nil
}

// Load reads every entry
func (s *SQLiteStore) Load(ctx context.Context) (entry.Log, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	log := entry.Log{}
	for rows.Next() {
		var r entryRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e, err := r.toEntry()
		if err != nil {
			return nil, err
		}
		log.Put(e)
	}
	return log, rows.Err()
}

// Save replaces all entries in one transaction
func (s *SQLiteStore) Save(ctx context.Context, log entry.Log) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	for _, date := range log.Dates() {
		if _, err := tx.ExecContext(ctx, sqliteUpsertEntry, toRow(log[date]).args()...); err != nil {
			return fmt.Errorf("failed to save entry %s: %w", date, err)
		}
	}
	return tx.Commit()
}

// Put upserts a single entry
func (s *SQLiteStore) Put(ctx context.Context, e entry.Entry) error {
	if _, err := s.db.ExecContext(ctx, sqliteUpsertEntry, toRow(e).args()...); err != nil {
		return fmt.Errorf("failed to save entry %s: %w", e.Date, err)
	}
	return nil
}

// Delete removes the entry for date
func (s *SQLiteStore) Delete(ctx context.Context, date string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", date, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", date, ErrNotFound)
	}
	return nil
}

// LoadGoals reads the goal row; none saved yields the defaults
func (s *SQLiteStore) LoadGoals(ctx context.Context) (goal.Goals, error) {
	var r goalsRow
	err := s.db.QueryRowContext(ctx,
		`SELECT sleep_hours, min_energy, exercise_frequency, mood_target, updated_at FROM goals WHERE id = 1`,
	).Scan(r.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return goal.Defaults(), nil
	}
	if err != nil {
		return goal.Goals{}, fmt.Errorf("failed to load goals: %w", err)
	}
	return r.toGoals(), nil
}

// SaveGoals replaces the goal row
func (s *SQLiteStore) SaveGoals(ctx context.Context, g goal.Goals) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, sleep_hours, min_energy, exercise_frequency, mood_target, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sleep_hours=excluded.sleep_hours,
			min_energy=excluded.min_energy,
			exercise_frequency=excluded.exercise_frequency,
			mood_target=excluded.mood_target,
			updated_at=excluded.updated_at`,
		toGoalsRow(g).args()...)
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

// Clear deletes all entries and goals
func (s *SQLiteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, tbl := range []string{"entries", "goals"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+tbl); err != nil {
			return fmt.Errorf("failed to clear %s: %w", tbl, err)
		}
	}
	return tx.Commit()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
