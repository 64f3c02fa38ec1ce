package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/insight"
	"github.com/focusflow/focusflow/internal/model"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Get an AI coaching summary of today's entries",
	Long: `Send today's per-category totals to the configured Gemini model and print
its short coaching summary. Requires GEMINI_API_KEY in the environment or
in ~/.focusflow/.env; without it a fixed notice is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runInsight,
}

func runInsight(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()

	today := tr.Today()
	todayLogs := tr.Query(func(l model.TimeLog) bool { return l.Date == today })
	if len(todayLogs) == 0 {
		fmt.Println("Nothing logged today yet. Record some time first with 'ff log' or 'ff start'.")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	client := insight.NewClient(config.APIKey(), cfg.InsightModel)
	fmt.Println(client.Summarize(context.Background(), todayLogs, tr.Categories))
	return nil
}
