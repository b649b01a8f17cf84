package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathflow/internal/activity"
	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/spacedrep"
	"github.com/abhisek/mathflow/internal/ui/components"
	"github.com/abhisek/mathflow/internal/ui/theme"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show mastery, due reviews and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			section, _ := cmd.Flags().GetString("section")
			days, _ := cmd.Flags().GetInt("days")
			return runStats(cmd, a, section, days)
		},
	}
	cmd.Flags().String("section", "", "Only show one section (addition, subtraction, multiplication, memory)")
	cmd.Flags().Int("days", 7, "Days of activity to show (at most 30)")
	return cmd
}

func runStats(cmd *cobra.Command, a *app, section string, days int) error {
	ctx := cmd.Context()
	topics, err := a.topicsIn(section)
	if err != nil {
		return err
	}
	sched, err := a.scheduler()
	if err != nil {
		return err
	}
	log, err := a.activityLog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var current facts.Section
	for _, t := range topics {
		if !t.SRS() {
			continue
		}
		if t.Section != current {
			current = t.Section
			fmt.Fprintln(out, theme.Section.Render(current.DisplayName()))
		}
		printTopicStats(out, sched.Summarize(ctx, t.ID, t.BuildPool()), t.Name)
	}

	fmt.Fprintln(out)
	printActivity(out, log.Streak(ctx), log.Days(ctx), days)
	return nil
}

func printTopicStats(w io.Writer, sum spacedrep.TopicSummary, name string) {
	label := fmt.Sprintf("  %-22s", name)
	if !sum.Started {
		fmt.Fprintln(w, label+theme.Dim.Render("not started"))
		return
	}
	bar := components.NewProgressBar("", float64(sum.MasteryPercent)/100, true, 30).View()
	due := theme.Dim.Render("nothing due")
	if sum.Due > 0 {
		due = theme.Due.Render(fmt.Sprintf("%d due", sum.Due))
	}
	fmt.Fprintf(w, "%s%s  %s\n", label, bar, due)
}

func printActivity(w io.Writer, streak int, days []activity.Day, limit int) {
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	fmt.Fprintf(w, "Streak: %s\n", theme.Title.Render(fmt.Sprintf("%d %s", streak, unit)))

	if len(days) == 0 {
		fmt.Fprintln(w, theme.Dim.Render("No activity yet. Try 'mathflow drill squares'."))
		return
	}
	limit = min(max(limit, 1), activity.RetainDays)
	if len(days) > limit {
		days = days[len(days)-limit:]
	}

	fmt.Fprintf(w, "\n%-12s  %9s  %7s  %8s\n", "Date", "Attempted", "Correct", "Sessions")
	fmt.Fprintln(w, strings.Repeat("─", 43))
	for _, d := range days {
		fmt.Fprintf(w, "%-12s  %9d  %7d  %8d\n", d.Date, d.Attempted, d.Correct, d.Sessions)
	}
}
