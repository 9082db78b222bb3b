package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/storage"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as JSON or CSV",
	Long: `Export all entries to stdout or a file.

JSON exports can be imported back with 'lifetuner import'.

Examples:
  lifetuner export > backup.json
  lifetuner export --format csv --output habits.csv`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		exportEntries(format, output)
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a JSON export",
	Long:  `Import entries from a JSON export. Imported entries replace existing entries for the same date.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		importEntries(args[0])
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries and goals",
	Long: `Delete all entries and reset goals to their defaults.

With the jsonl backend the entries file is backed up first and can be
brought back with 'lifetuner restore'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		clearData(yes)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)

	exportCmd.Flags().StringP("format", "f", storage.FormatJSON, "output format: json or csv")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	clearCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

func exportEntries(format, output string) {
	if format != storage.FormatJSON && format != storage.FormatCSV {
		fail(fmt.Sprintf("Unsupported format '%s'", format), nil, "Use --format json or --format csv")
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	var w io.Writer = deps.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fail("Failed to create output file", err)
			return
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	n, err := svcs.Data.Export(context.Background(), w, format)
	if err != nil {
		fail("Failed to export entries", err)
		return
	}
	if output != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", n, pluralize("entry", n), output)
	}
}

func importEntries(path string) {
	f, err := os.Open(path)
	if err != nil {
		fail("Failed to open import file", err)
		return
	}
	defer func() { _ = f.Close() }()

	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	n, err := svcs.Data.Import(context.Background(), f)
	if errors.Is(err, service.ErrInvalidImport) {
		fail("Failed to import entries", err, "Fix the listed dates in the file; nothing was imported")
		return
	}
	if err != nil {
		fail("Failed to import entries", err, "The file must be a JSON export created by 'lifetuner export'")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d %s\n", n, pluralize("entry", n))
}

func clearData(yes bool) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	if !yes && !promptConfirmation("Delete ALL entries and goals?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
		return
	}

	if err := svcs.Data.Clear(context.Background()); err != nil {
		fail("Failed to clear data", err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "All data cleared")
}
