package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/storage"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the entry for a date",
	Long: `Delete the entry logged for a date.

A confirmation prompt will be shown unless --yes is specified.

Examples:
  lifetuner delete 2024-01-15
  lifetuner delete yesterday --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		deleteEntry(args[0], yes)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func deleteEntry(date string, yes bool) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	ctx := context.Background()
	e, err := svcs.Entry.Get(ctx, date)
	if errors.Is(err, storage.ErrNotFound) {
		fail(fmt.Sprintf("No entry for %s", date), nil, "Use 'lifetuner list' to see logged dates")
		return
	}
	if err != nil {
		fail("Failed to read entry", err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatEntry(e, svcs.Config.Get().StatsOptions().Rollover))

	if !yes && !promptConfirmation("Delete this entry?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
		return
	}

	key, err := svcs.Entry.Delete(ctx, e.Date)
	if err != nil {
		fail("Failed to delete entry", err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted entry for %s\n", key)
}
