package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/notify"
	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
	"github.com/focusflow/focusflow/internal/ui"
)

var startSub string

var startCmd = &cobra.Command{
	Use:   "start <category>",
	Short: "Start a live timer for a category",
	Long: `Run a full-screen timer for the category. While it runs, daily goal
progress is re-checked every second and the 80% and 100% milestones each
fire one desktop notification. Stopping records a single entry with the
accumulated time (pauses excluded).`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&startSub, "sub", "", "Sub-category name (reused case-insensitively, created if new)")
}

func runStart(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])

	subID := ""
	subName := ""
	if startSub != "" {
		sub, err := tr.FindOrAddSubCategory(cat.ID, startSub)
		if err != nil {
			return err
		}
		subID = sub.ID
		subName = sub.Name
	}

	session := tracker.NewSession(cat.ID, subID, tr.Now())
	m := ui.NewTimerModel(tr, cat, subName, session, notify.Desktop{})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fm, ok := final.(ui.TimerModel)
	if !ok {
		return nil
	}
	if fm.Err != nil {
		if errors.Is(fm.Err, tracker.ErrEmptySession) {
			fmt.Println("Nothing recorded (session under one second).")
			return nil
		}
		fmt.Fprintln(os.Stderr, fm.Err)
		os.Exit(2)
	}

	label := cat.Name
	if subName != "" {
		label += " · " + subName
	}
	fmt.Printf("Stopped. Logged %s to %s.\n", timecalc.FormatDuration(fm.Final.DurationSeconds), label)
	return nil
}
