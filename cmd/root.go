package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/notify"
	"github.com/focusflow/focusflow/internal/storage"
	"github.com/focusflow/focusflow/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "ff",
	Short: "FocusFlow – a personal time tracker with goals and AI coaching",
	Long: `ff tracks time per activity category, live or retroactively, and compares
your totals against daily and weekly goals. All data is stored as
human-readable JSON files in ~/.focusflow/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(insightCmd)
}

// mustOpenTracker loads the full application state or exits. Corrupt slots
// were already downgraded to defaults by the storage layer; only real I/O
// failures land here.
func mustOpenTracker() *tracker.Tracker {
	base, err := storage.DefaultDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	tr, err := tracker.New(storage.NewStore(base), tracker.WithNotifier(notify.Desktop{}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return tr
}

// resolveCategory matches a CLI argument against the registry: exact ID
// first, then case-insensitive name.
func resolveCategory(cats []model.Category, key string) (model.Category, bool) {
	for _, c := range cats {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return model.Category{}, false
}

// mustResolveCategory resolves or exits with a hint.
func mustResolveCategory(tr *tracker.Tracker, key string) model.Category {
	cat, ok := resolveCategory(tr.Categories, key)
	if !ok {
		fmt.Fprintf(os.Stderr, "No category %q. See 'ff category list'.\n", key)
		os.Exit(1)
	}
	return cat
}
