package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/filter"
	"github.com/xolan/lifetuner/internal/timeutil"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged entries",
	Long: `List entries in a date range.

Without flags all entries are listed. Entries can be narrowed by
activity (repeatable, all must match), a keyword in the note, a
minimum mood, or to entries that are still partial.

Examples:
  lifetuner list --last 7
  lifetuner list --from 2024-01-01 --to 2024-01-31
  lifetuner list --from 01/01/2024
  lifetuner list --activity exercise --min-mood 4
  lifetuner list --search headache --partial`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		last, _ := cmd.Flags().GetInt("last")
		f := listFilter(cmd)
		listEntries(from, to, last, f)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("from", "", "start date (YYYY-MM-DD or DD/MM/YYYY)")
	listCmd.Flags().String("to", "", "end date (YYYY-MM-DD or DD/MM/YYYY)")
	listCmd.Flags().IntP("last", "l", 0, "show the last N days")
	listCmd.Flags().StringSliceP("activity", "a", nil, "only entries with this activity")
	listCmd.Flags().StringP("search", "s", "", "only entries whose note contains this text")
	listCmd.Flags().Int("min-mood", 0, "only entries with at least this mood")
	listCmd.Flags().Bool("partial", false, "only entries missing mood, energy or sleep times")
}

func listFilter(cmd *cobra.Command) *filter.Filter {
	activities, _ := cmd.Flags().GetStringSlice("activity")
	keyword, _ := cmd.Flags().GetString("search")
	f := filter.NewFilter(keyword, activities)
	f.MinMood, _ = cmd.Flags().GetInt("min-mood")
	f.Incomplete, _ = cmd.Flags().GetBool("partial")
	return f
}

func listEntries(from, to string, last int, f *filter.Filter) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	result, err := svcs.Entry.ListRange(context.Background(), from, to, last)
	if err != nil {
		fail("Invalid date range", err, "Use --last N, or --from/--to with YYYY-MM-DD or DD/MM/YYYY")
		return
	}

	entries := filter.FilterEntries(result.Entries, f)
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries found")
		return
	}

	rule := svcs.Config.Get().StatsOptions().Rollover
	if result.Start.IsZero() {
		printHeader(fmt.Sprintf("Entries up to %s", timeutil.DateKey(result.End)))
	} else {
		printHeader(fmt.Sprintf("Entries %s to %s", timeutil.DateKey(result.Start), timeutil.DateKey(result.End)))
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatEntry(e, rule))
	}
	_, _ = fmt.Fprintln(deps.Stdout, "-----")
	n := len(entries)
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", n, pluralize("entry", n))
}
