package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
)

var (
	logDate string
	logSub  string
)

var logCmd = &cobra.Command{
	Use:   "log <category> <minutes>",
	Short: "Record a completed time entry",
	Long: `Record minutes spent on a category, today by default or on an earlier day
with --date. Backdated entries are anchored at noon of their day and never
trigger goal notifications.`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Logical day of the entry (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logSub, "sub", "", "Sub-category name (reused case-insensitively, created if new)")
}

func runLog(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])

	minutes, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || minutes <= 0 {
		return fmt.Errorf("minutes must be a positive integer, got %q", args[1])
	}

	date := logDate
	if date == "" {
		date = tr.Today()
	} else if _, err := timecalc.ParseDate(date, time.Local); err != nil {
		return err
	}

	subID := ""
	subName := ""
	if logSub != "" {
		sub, err := tr.FindOrAddSubCategory(cat.ID, logSub)
		if err != nil {
			return err
		}
		subID = sub.ID
		subName = sub.Name
	}

	entry, err := tr.AppendLog(cat.ID, minutes, date, subID)
	if err != nil {
		if errors.Is(err, tracker.ErrInvalidDuration) {
			return fmt.Errorf("minutes must be positive")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	label := cat.Name
	if subName != "" {
		label += " · " + subName
	}
	fmt.Printf("Logged %s to %s on %s\n", timecalc.FormatDuration(entry.DurationSeconds), label, entry.Date)
	return nil
}
