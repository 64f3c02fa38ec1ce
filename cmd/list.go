package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
)

var (
	listWeek bool
	listAll  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's entries")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show all entries")
}

func runList(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()

	var entries []model.TimeLog
	switch {
	case listAll:
		entries = tr.Query(func(model.TimeLog) bool { return true })
	case listWeek:
		cfg, _ := config.Load()
		boundary := timecalc.StartOfWeek(tr.Now(), cfg.WeekStartDay()).UnixMilli()
		entries = tr.Query(func(l model.TimeLog) bool { return l.StartTime >= boundary })
	default:
		today := tr.Today()
		entries = tr.Query(func(l model.TimeLog) bool { return l.Date == today })
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	// Append order is chronological, so walk backwards for most recent first.
	for i := len(entries) - 1; i >= 0; i-- {
		printEntry(tr, entries[i])
	}
	return nil
}

func printEntry(tr *tracker.Tracker, l model.TimeLog) {
	dot := "●"
	label := model.UnknownLabel
	if cat, ok := tr.FindCategory(l.CategoryID); ok {
		dot = lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color.Hex())).Render("●")
		label = cat.Name
		if l.SubCategoryID != "" {
			if sub, found := cat.FindSub(l.SubCategoryID); found {
				label += " · " + sub.Name
			}
		}
	}

	started := time.UnixMilli(l.StartTime).Format("Jan 02 15:04")
	fmt.Printf("%s %s  %-28s %s\n", dot, started, label, timecalc.FormatDuration(l.DurationSeconds))
}
