package main

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *app) logCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the most recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			records, err := db.RecentSessions(ctx, limit)
			if err != nil {
				return err
			}
			printLog(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions to print")
	return cmd
}

func printLog(out io.Writer, records []models.SessionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No sessions.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ENDED", "KIND", "LENGTH", "TASK", "CATEGORY")
	for _, rec := range records {
		t.Row(rec.EndedAt.Local().Format("2006-01-02 15:04"), rec.Kind, timer.Format(rec.Seconds), rec.TaskName, rec.Category)
	}
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d sessions\n", len(records))
}
