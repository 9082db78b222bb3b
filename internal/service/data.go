package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/logger"
	"github.com/xolan/lifetuner/internal/storage"
)

// ErrFileBackendOnly is returned by operations that need the JSONL backend
var ErrFileBackendOnly = errors.New("only available with the jsonl storage backend")

// ErrNoBackups is returned when there is nothing to restore
var ErrNoBackups = errors.New("no backups available")

// ErrInvalidImport is returned when an import holds entries that fail validation
var ErrInvalidImport = errors.New("import rejected")

// DataService handles export, import and storage maintenance
type DataService struct {
	base
}

// Export writes every entry to w in format ("json" or "csv")
func (s *DataService) Export(ctx context.Context, w io.Writer, format string) (int, error) {
	log, err := s.load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read entries: %w", err)
	}
	if err := storage.Export(w, log, format, s.config.StatsOptions().Rollover); err != nil {
		return 0, err
	}
	return len(log), nil
}

// Import merges a JSON export into the log; imported entries replace by date.
// Every record is validated first and nothing is written if any fails.
func (s *DataService) Import(ctx context.Context, r io.Reader) (int, error) {
	imported, err := storage.ImportJSON(r)
	if err != nil {
		return 0, err
	}
	if err := validateImport(imported, s.config.StatsOptions().Rollover); err != nil {
		return 0, err
	}

	log, err := s.load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read entries: %w", err)
	}
	for _, e := range imported {
		log.Put(e)
	}
	if err := s.store.Save(ctx, log); err != nil {
		return 0, fmt.Errorf("failed to save entries: %w", err)
	}
	logger.Info("entries imported", "count", len(imported))
	return len(imported), nil
}

func validateImport(log entry.Log, rule entry.RolloverRule) error {
	var bad []string
	var errs []error
	for _, date := range log.Dates() {
		if err := entry.Validate(log[date], rule); err != nil {
			bad = append(bad, date)
			errs = append(errs, fmt.Errorf("%s: %w", date, err))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	logger.Warn("import rejected", "invalid", len(bad), "total", len(log))
	return fmt.Errorf("%w: invalid entries for %s: %w", ErrInvalidImport, strings.Join(bad, ", "), errors.Join(errs...))
}

// Clear removes all entries and goals
func (s *DataService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	logger.Warn("all data cleared")
	return nil
}

func (s *DataService) filePath() (string, error) {
	fs, ok := s.store.(*storage.JSONLStore)
	if !ok {
		return "", ErrFileBackendOnly
	}
	return fs.Path(), nil
}

// Validate reports the health of the JSONL storage file
func (s *DataService) Validate() (*storage.StorageHealth, error) {
	path, err := s.filePath()
	if err != nil {
		return nil, err
	}
	health, err := storage.ValidateStorage(path)
	if err != nil {
		return nil, err
	}
	return &health, nil
}

// Backups lists the JSONL backups, most recent first
func (s *DataService) Backups() ([]storage.BackupInfo, error) {
	path, err := s.filePath()
	if err != nil {
		return nil, err
	}
	return storage.ListBackups(path), nil
}

// Restore replaces the JSONL file with backup n
func (s *DataService) Restore(n int) error {
	backups, err := s.Backups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return ErrNoBackups
	}
	path, _ := s.filePath()
	if err := storage.RestoreBackup(path, n); err != nil {
		return err
	}
	logger.Info("restored from backup", "number", n)
	return nil
}
