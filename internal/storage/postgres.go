package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
)

const postgresUpsertEntry = `
	INSERT INTO entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (date) DO UPDATE SET
		bed_time = EXCLUDED.bed_time,
		wake_time = EXCLUDED.wake_time,
		mood = EXCLUDED.mood,
		energy = EXCLUDED.energy,
		activities = EXCLUDED.activities,
		captured_at = EXCLUDED.captured_at,
		note = EXCLUDED.note`

// PostgresStore keeps the habit log in PostgreSQL through a pgx pool
type PostgresStore struct {
	dsn  string
	pool *pgxpool.Pool
}

// NewPostgresStore returns a store for the given connection string
func NewPostgresStore(dsn string) *PostgresStore {
	return &PostgresStore{dsn: dsn}
}

// Init connects and applies the schema
func (s *PostgresStore) Init(ctx context.Context) error {
	op := "storage.PostgresStore.Init"

	pool, err := pgxpool.New(ctx, s.dsn)
	if err != nil {
		return fmt.Errorf("%s: failed to create pool: %w", op, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("%s: failed to connect: %w", op, err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return fmt.Errorf("%s: failed to apply schema: %w", op, err)
	}

	s.pool = pool
	return nil
}

// Load reads every entry
func (s *PostgresStore) Load(ctx context.Context) (entry.Log, error) {
	op := "storage.PostgresStore.Load"

	rows, err := s.pool.Query(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	log := entry.Log{}
	for rows.Next() {
		var r entryRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		e, err := r.toEntry()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Put(e)
	}
	return log, rows.Err()
}

// Save replaces all entries in one transaction
func (s *PostgresStore) Save(ctx context.Context, log entry.Log) error {
	op := "storage.PostgresStore.Save"

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM entries`); err != nil {
			return fmt.Errorf("%s: clear: %w", op, err)
		}
		batch := &pgx.Batch{}
		for _, date := range log.Dates() {
			batch.Queue(postgresUpsertEntry, toRow(log[date]).args()...)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%s: insert: %w", op, err)
		}
		return nil
	})
}

// Put upserts a single entry
func (s *PostgresStore) Put(ctx context.Context, e entry.Entry) error {
	op := "storage.PostgresStore.Put"

	if _, err := s.pool.Exec(ctx, postgresUpsertEntry, toRow(e).args()...); err != nil {
		return fmt.Errorf("%s: %s: %w", op, e.Date, err)
	}
	return nil
}

// Delete removes the entry for date
func (s *PostgresStore) Delete(ctx context.Context, date string) error {
	op := "storage.PostgresStore.Delete"

	tag, err := s.pool.Exec(ctx, `DELETE FROM entries WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", date, ErrNotFound)
	}
	return nil
}

// LoadGoals reads the goal row; none saved yields the defaults
func (s *PostgresStore) LoadGoals(ctx context.Context) (goal.Goals, error) {
	op := "storage.PostgresStore.LoadGoals"

	var r goalsRow
	err := s.pool.QueryRow(ctx,
		`SELECT sleep_hours, min_energy, exercise_frequency, mood_target, updated_at FROM goals WHERE id = 1`,
	).Scan(r.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return goal.Defaults(), nil
	}
	if err != nil {
		return goal.Goals{}, fmt.Errorf("%s: %w", op, err)
	}
	return r.toGoals(), nil
}

// SaveGoals replaces the goal row
func (s *PostgresStore) SaveGoals(ctx context.Context, g goal.Goals) error {
	op := "storage.PostgresStore.SaveGoals"

	_, err := s.pool.Exec(ctx, `
		INSERT INTO goals (id, sleep_hours, min_energy, exercise_frequency, mood_target, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			sleep_hours = EXCLUDED.sleep_hours,
			min_energy = EXCLUDED.min_energy,
			exercise_frequency = EXCLUDED.exercise_frequency,
			mood_target = EXCLUDED.mood_target,
			updated_at = EXCLUDED.updated_at`,
		toGoalsRow(g).args()...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear deletes all entries and goals
func (s *PostgresStore) Clear(ctx context.Context) error {
	op := "storage.PostgresStore.Clear"

	if _, err := s.pool.Exec(ctx, `TRUNCATE entries, goals`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close releases the pool
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
