package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/lifetuner/internal/coach"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend <feeling>",
	Short: "Get suggestions for how you feel right now",
	Long:  `Get suggestions for tired, stressed, energetic or unfocused, personalised from your last week.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		recommend(args[0])
	},
}

// motivationCmd represents the motivation command
var motivationCmd = &cobra.Command{
	Use:   "motivation",
	Short: "Show the quote of the day and a reading of your week",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showMotivation()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(motivationCmd)

	for _, f := range coach.Feelings {
		recommendCmd.ValidArgs = append(recommendCmd.ValidArgs, string(f))
	}
}

func recommend(feeling string) {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	recs, err := svcs.Coach.Recommend(context.Background(), feeling)
	if err != nil {
		fail("Cannot build recommendations", err)
		return
	}

	printHeader(fmt.Sprintf("Feeling %s", recs.Feeling))
	for i, r := range recs.Primary {
		_, _ = fmt.Fprintf(deps.Stdout, "%d. %s: %s\n", i+1, r.Title, r.Description)
		_, _ = fmt.Fprintf(deps.Stdout, "   %s\n", r.Action)
	}

	printSection(fmt.Sprintf("This %s", recs.TimeOfDay))
	for _, c := range recs.Contextual {
		_, _ = fmt.Fprintf(deps.Stdout, "  - %s\n", c)
	}
}

func showMotivation() {
	svcs, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(svcs)

	insight, err := svcs.Coach.DailyInsight(context.Background())
	if err != nil {
		fail("Failed to read entries", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%q\n\n", svcs.Coach.Motivation())
	_, _ = fmt.Fprintln(deps.Stdout, insight)
}
