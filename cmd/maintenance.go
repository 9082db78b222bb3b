package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/storage"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check storage file health",
	Long:  `Validate the entries file and report on its health status, including any corrupted lines.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore from a backup file",
	Long: `Restore the entries file from a backup.

By default, restores from the most recent backup (.bak.1).
Optionally specify a backup number to restore from (1-3).

Examples:
  lifetuner restore       Restore from most recent backup
  lifetuner restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)
}

const fileBackendHint = "Backups and validation work with the jsonl backend; set [storage] backend = \"jsonl\""

func validateStorage() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	health, err := svcs.Data.Validate()
	if errors.Is(err, service.ErrFileBackendOnly) {
		fail("Validation is not available for this backend", err, fileBackendHint)
		return
	}
	if err != nil {
		fail("Failed to validate storage", err)
		return
	}

	printHeader("Storage health")
	_, _ = fmt.Fprintf(deps.Stdout, "File:               %s\n", health.Path)
	_, _ = fmt.Fprintf(deps.Stdout, "Lines:              %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid entries:      %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Unique dates:       %d\n", health.UniqueDates)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted entries:  %d\n", health.CorruptedEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "Backups:            %d\n", len(health.Backups))

	if health.CorruptedEntries == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nStatus: healthy")
		return
	}

	printSection("Corrupted lines")
	for _, w := range health.Warnings {
		_, _ = fmt.Fprintf(deps.Stdout, "  line %d: %s\n", w.LineNumber, w.Error)
	}
	_, _ = fmt.Fprintln(deps.Stdout, "\nCorrupted lines are skipped when reading. Run 'lifetuner restore' to roll back to a backup.")
}

func restoreFromBackup(args []string) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	backups, err := svcs.Data.Backups()
	if errors.Is(err, service.ErrFileBackendOnly) {
		fail("Restore is not available for this backend", err, fileBackendHint)
		return
	}
	if err != nil {
		fail("Failed to list backups", err)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			fail(fmt.Sprintf("Invalid backup number '%s'", args[0]), nil)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			fail(fmt.Sprintf("Backup number must be between 1 and %d (got %d)", storage.MaxBackupCount, num), nil)
			return
		}
		backupNum = num
	}

	if err := svcs.Data.Restore(backupNum); err != nil {
		fail("Failed to restore backup", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", backupNum)
}
