package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	var rangeName, category string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print completed work sessions for the chosen range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := stats.ParseRange(rangeName)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			now := time.Now()
			records, err := db.ListWorkSessions(ctx, stats.Since(rng, now), category)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), records, rng, now, category)
			return nil
		},
	}
	cmd.Flags().StringVarP(&rangeName, "range", "r", string(stats.Week), "day, week or month")
	cmd.Flags().StringVarP(&category, "category", "c", config.CategoryAll, "only count this category")
	return cmd
}

func printStats(out io.Writer, records []models.SessionRecord, rng stats.Range, now time.Time, category string) {
	buckets := stats.Aggregate(records, rng, now, category)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PERIOD", "SESSIONS", "MINUTES")
	for _, b := range buckets {
		t.Row(b.Label, strconv.Itoa(b.Count), strconv.Itoa(b.Minutes))
	}
	fmt.Fprintln(out, t.Render())

	count, minutes := stats.Summary(buckets)
	fmt.Fprintf(out, "Total: %d sessions, %d minutes\n", count, minutes)
	for _, ct := range stats.CategoryTotals(records, rng, now, category) {
		fmt.Fprintf(out, "  %-12s %d\n", ct.Name, ct.Count)
	}
}
