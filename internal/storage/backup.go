package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the path of backup n for a storage file.
// Backups are named entries.jsonl.bak.N; lower numbers are more recent.
func GetBackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
// Missing files are not an error.
func rotateBackups(storagePath string) error {
	if err := os.Remove(GetBackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(GetBackupPath(storagePath, i), GetBackupPath(storagePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the storage file to .bak.1 after rotating older backups.
// Nothing happens when the storage file does not exist yet.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return fmt.Errorf("failed to rotate backups: %w", err)
	}

	return copyFile(storagePath, GetBackupPath(storagePath, 1))
}

// BackupInfo describes an existing backup file
type BackupInfo struct {
	Number int    // The backup number (1 is most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups of storagePath, most recent first
func ListBackups(storagePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		p := GetBackupPath(storagePath, i)
		if _, err := os.Stat(p); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: p})
		}
	}
	return backups
}

// RestoreBackup replaces the storage file with backup n.
// The current state is backed up first, so a restore can itself be undone.
func RestoreBackup(storagePath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := GetBackupPath(storagePath, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	// Hold the backup contents before rotation renames the file
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	return writeFileAtomic(storagePath, data)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

// writeFileAtomic writes data to a temp file beside path and renames it into place
func writeFileAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
