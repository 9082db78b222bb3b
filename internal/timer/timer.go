// Package timer persists the running sleep timer between invocations.
package timer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// SessionFile is the name of the JSON sleep timer state file
const SessionFile = "sleep.json"

// SessionState is a sleep timer started at bedtime
type SessionState struct {
	StartedAt time.Time `json:"started_at"`
	Note      string    `json:"note,omitempty"`
}

// SessionPath returns the sleep timer file next to the config file
func SessionPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), SessionFile)
}

// SaveSessionState writes the state, replacing any existing file.
// Writes to a temp file and renames it into place.
func SaveSessionState(path string, state SessionState) error {
	// SessionState holds only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// LoadSessionState reads the state file.
// Returns nil if the file doesn't exist (no sleep timer running).
func LoadSessionState(path string) (*SessionState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ClearSessionState removes the state file; a missing file is not an error
func ClearSessionState(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsRunning reports whether a sleep timer state file exists and parses
func IsRunning(path string) (bool, error) {
	state, err := LoadSessionState(path)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}
