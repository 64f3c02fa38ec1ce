package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/stats"
	"github.com/focusflow/focusflow/internal/timecalc"
	"github.com/focusflow/focusflow/internal/tracker"
)

var (
	statsRange  string
	statsFormat string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated totals per category",
	Long: `Sum logged time per category over the current day, week or month. The
window is anchored at the current instant; entries are filtered by their
start timestamp.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsRange, "range", "daily", "Window: daily, weekly, monthly")
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "Output format: table, csv, json")
}

func runStats(cmd *cobra.Command, args []string) error {
	window, ok := stats.ParseWindow(statsRange)
	if !ok {
		return fmt.Errorf("invalid range %q (expected daily, weekly or monthly)", statsRange)
	}

	tr := mustOpenTracker()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	rows := stats.Aggregate(tr.Logs, window, tr.Now(), cfg.WeekStartDay())
	grandTotal := stats.Total(rows)

	switch statsFormat {
	case "csv":
		fmt.Println("category,duration_minutes")
		for _, r := range rows {
			fmt.Printf("%s,%d\n", tr.DisplayName(r.CategoryID), r.TotalSeconds/60)
		}
	case "json":
		printStatsJSON(tr, window, rows, grandTotal)
	default:
		printStatsTable(tr, window, rows, grandTotal)
	}
	return nil
}

func printStatsTable(tr *tracker.Tracker, window stats.Window, rows []stats.CategoryTotal, grandTotal int64) {
	fmt.Printf("Totals (%s)\n", window)
	fmt.Println("--------------------------------")
	if len(rows) == 0 {
		fmt.Println("No entries in this window.")
		return
	}
	for _, r := range rows {
		dot := "●"
		if cat, ok := tr.FindCategory(r.CategoryID); ok {
			dot = lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color.Hex())).Render("●")
		}
		fmt.Printf("%s %-20s%s\n", dot, tr.DisplayName(r.CategoryID), timecalc.FormatDuration(r.TotalSeconds))
	}
	fmt.Println("--------------------------------")
	fmt.Printf("  %-20s%s\n", "Total", timecalc.FormatDuration(grandTotal))
}

func printStatsJSON(tr *tracker.Tracker, window stats.Window, rows []stats.CategoryTotal, grandTotal int64) {
	type jsonRow struct {
		CategoryID      string `json:"category_id"`
		Category        string `json:"category"`
		DurationMinutes int64  `json:"duration_minutes"`
	}
	out := struct {
		Range        string    `json:"range"`
		Categories   []jsonRow `json:"categories"`
		TotalMinutes int64     `json:"total_minutes"`
	}{
		Range:      string(window),
		Categories: make([]jsonRow, 0, len(rows)),
	}
	for _, r := range rows {
		out.Categories = append(out.Categories, jsonRow{
			CategoryID:      r.CategoryID,
			Category:        tr.DisplayName(r.CategoryID),
			DurationMinutes: r.TotalSeconds / 60,
		})
	}
	out.TotalMinutes = grandTotal / 60

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(string(data))
}
