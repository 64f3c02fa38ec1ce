package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/timecalc"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily and weekly goals",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <category> <daily|weekly> <minutes>",
	Short: "Set a goal (0 minutes removes it)",
	Args:  cobra.ExactArgs(3),
	RunE:  runGoalSet,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with current progress",
	Args:  cobra.NoArgs,
	RunE:  runGoalList,
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalListCmd)
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	typ, ok := model.ParseGoalType(args[1])
	if !ok {
		return fmt.Errorf("invalid goal type %q (expected daily or weekly)", args[1])
	}
	minutes, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("minutes must be an integer, got %q", args[2])
	}

	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])

	if err := tr.SetGoal(cat.ID, typ, minutes); err != nil {
		return err
	}
	if minutes <= 0 {
		fmt.Printf("Removed %s goal for %q\n", typ, cat.Name)
	} else {
		fmt.Printf("Set %s goal for %q to %s\n", typ, cat.Name, timecalc.FormatDuration(minutes*60))
	}
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	if len(tr.Goals) == 0 {
		fmt.Println("No goals set. Use 'ff goal set <category> daily <minutes>'.")
		return nil
	}

	cfg, _ := config.Load()
	weekBoundary := timecalc.StartOfWeek(tr.Now(), cfg.WeekStartDay()).UnixMilli()
	today := tr.Today()

	for _, g := range tr.Goals {
		var progress int64
		switch g.Type {
		case model.GoalDaily:
			progress = tr.DayTotal(g.CategoryID, today)
		case model.GoalWeekly:
			for _, l := range tr.Logs {
				if l.CategoryID == g.CategoryID && l.StartTime >= weekBoundary {
					progress += l.DurationSeconds
				}
			}
		}

		pct := progress * 100 / g.TargetSeconds
		if pct > 100 {
			pct = 100
		}
		fmt.Printf("%-16s %-7s %s / %s (%d%%)\n",
			tr.DisplayName(g.CategoryID), g.Type,
			timecalc.FormatDuration(progress), timecalc.FormatDuration(g.TargetSeconds), pct)
	}
	return nil
}
