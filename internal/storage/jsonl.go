package storage

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xolan/lifetuner/internal/entry"
	"github.com/xolan/lifetuner/internal/goal"
	"github.com/xolan/lifetuner/internal/logger"
)

const (
	// EntriesFile is the name of the JSON Lines storage file
	EntriesFile = "entries.jsonl"
	// GoalsFile is the name of the goals file stored beside the entries
	GoalsFile = "goals.json"
)

// ParseWarning represents a warning about a corrupted or malformed entry
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the corrupted line
	Error      string // Description of the parsing error
}

// ReadResult contains the habit log parsed from storage together with
// warnings about corrupted or malformed lines
type ReadResult struct {
	Log      entry.Log
	Lines    int // Lines read, including blank ones
	Parsed   int // Lines that decoded into an entry
	Warnings []ParseWarning
}

// ReadEntriesWithWarnings reads the JSON Lines file into a habit log.
// Later lines replace earlier lines for the same date. Lines that fail to
// parse, or lack a date, are skipped and reported as warnings.
// A missing file yields an empty log.
func ReadEntriesWithWarnings(path string) (ReadResult, error) {
	result := ReadResult{Log: entry.Log{}, Warnings: []ParseWarning{}}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var e entry.Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{LineNumber: result.Lines, Content: line, Error: err.Error()})
			continue
		}
		if _, ok := e.Day(); !ok {
			result.Warnings = append(result.Warnings, ParseWarning{LineNumber: result.Lines, Content: line, Error: fmt.Sprintf("invalid date %q", e.Date)})
			continue
		}
		result.Parsed++
		result.Log.Put(e)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// AppendEntry appends a single entry to the JSON Lines file, creating it if needed
func AppendEntry(path string, e entry.Entry) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, err = file.Write(append(line, '\n'))
	return err
}

// WriteEntries rewrites the JSON Lines file with one line per date in ascending order.
// The file is replaced atomically through a temp file and rename.
func WriteEntries(path string, log entry.Log) error {
	var buf bytes.Buffer
	for _, date := range log.Dates() {
		line, err := json.Marshal(log[date])
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return writeFileAtomic(path, buf.Bytes())
}

// StorageHealth summarizes the state of the storage file
type StorageHealth struct {
	Path             string
	TotalLines       int            // Total number of lines in the storage file
	ValidEntries     int            // Number of successfully parsed lines
	UniqueDates      int            // Number of distinct dates after later lines win
	CorruptedEntries int            // Number of corrupted/malformed lines
	Warnings         []ParseWarning // Detailed information about each corrupted line
	Backups          []BackupInfo
}

// ValidateStorage analyzes the storage file. A missing file is healthy and empty.
func ValidateStorage(path string) (StorageHealth, error) {
	health := StorageHealth{Path: path, Warnings: []ParseWarning{}}

	result, err := ReadEntriesWithWarnings(path)
	if err != nil {
		return health, err
	}

	health.TotalLines = result.Lines
	health.CorruptedEntries = len(result.Warnings)
	health.ValidEntries = result.Parsed
	health.UniqueDates = len(result.Log)
	health.Warnings = result.Warnings
	health.Backups = ListBackups(path)

	return health, nil
}

// JSONLStore keeps entries in a JSON Lines file and goals in a JSON file beside it
type JSONLStore struct {
	path      string
	goalsPath string
}

// NewJSONLStore returns a store for the given entries file
func NewJSONLStore(path string) *JSONLStore {
	return &JSONLStore{
		path:      path,
		goalsPath: filepath.Join(filepath.Dir(path), GoalsFile),
	}
}

// Path returns the entries file path
func (s *JSONLStore) Path() string {
	return s.path
}

// Init creates the storage directory
func (s *JSONLStore) Init(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("storage path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

// Load reads the habit log; corrupted lines are logged and skipped
func (s *JSONLStore) Load(ctx context.Context) (entry.Log, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := ReadEntriesWithWarnings(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	for _, w := range result.Warnings {
		logger.Warn("skipping corrupted entry", "file", s.path, "line", w.LineNumber, "error", w.Error)
	}
	return result.Log, nil
}

// Save backs up the current file and rewrites it with log
func (s *JSONLStore) Save(ctx context.Context, log entry.Log) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CreateBackup(s.path); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	if err := WriteEntries(s.path, log); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	return nil
}

// Put appends e; it supersedes any earlier line for the same date
func (s *JSONLStore) Put(ctx context.Context, e entry.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := AppendEntry(s.path, e); err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}
	return nil
}

// Delete rewrites the file without date after taking a backup
func (s *JSONLStore) Delete(ctx context.Context, date string) error {
	log, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := log[date]; !ok {
		return fmt.Errorf("%s: %w", date, ErrNotFound)
	}
	delete(log, date)
	return s.Save(ctx, log)
}

// LoadGoals reads goals.json; a missing file yields the defaults
func (s *JSONLStore) LoadGoals(ctx context.Context) (goal.Goals, error) {
	if err := ctx.Err(); err != nil {
		return goal.Goals{}, err
	}

	data, err := os.ReadFile(s.goalsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return goal.Defaults(), nil
		}
		return goal.Goals{}, fmt.Errorf("failed to read goals: %w", err)
	}

	var g goal.Goals
	if err := json.Unmarshal(data, &g); err != nil {
		logger.Warn("goals file is corrupted, using defaults", "file", s.goalsPath, "error", err)
		return goal.Defaults(), nil
	}
	return g.WithDefaults(), nil
}

// SaveGoals replaces goals.json
func (s *JSONLStore) SaveGoals(ctx context.Context, g goal.Goals) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.goalsPath, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write goals: %w", err)
	}
	return nil
}

// Clear backs up and empties the entries file and removes goals
func (s *JSONLStore) Clear(ctx context.Context) error {
	if err := s.Save(ctx, entry.Log{}); err != nil {
		return err
	}
	if err := os.Remove(s.goalsPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove goals: %w", err)
	}
	return nil
}

// Close is a no-op for file storage
func (s *JSONLStore) Close() error {
	return nil
}
