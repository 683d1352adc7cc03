package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		pdf, encrypt bool
		out          string
		rangeName    string
		category     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup or a PDF statistics report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pdf && encrypt {
				return errors.New("--encrypt applies to JSON exports only")
			}
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			now := time.Now()
			if pdf {
				rng, err := stats.ParseRange(rangeName)
				if err != nil {
					return err
				}
				records, err := db.ListWorkSessions(ctx, stats.Since(rng, now), category)
				if err != nil {
					return err
				}
				if out == "" {
					out = filepath.Join(util.ReportsDir(config.AppName), report.FileName(config.AppName+"-stats", "pdf", now))
				}
				err = report.WriteStatsPDF(out, report.Stats{
					Title:       i18n.New("en").T(i18n.MsgReportTitle),
					Range:       rng,
					Category:    category,
					GeneratedAt: now,
					Buckets:     stats.Aggregate(records, rng, now, category),
					Totals:      stats.CategoryTotals(records, rng, now, category),
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			var passphrase string
			if encrypt {
				if passphrase, err = promptNewPassphrase(); err != nil {
					return err
				}
			}
			export, err := db.ExportAll(ctx)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(util.ReportsDir(config.AppName), report.FileName(config.ExportPrefix, "json", now))
			}
			if err := report.WriteJSON(out, export, passphrase); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pdf, "pdf", false, "write the statistics report as PDF")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "seal the JSON export with a passphrase")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: reports directory)")
	cmd.Flags().StringVarP(&rangeName, "range", "r", string(stats.Week), "report range for --pdf")
	cmd.Flags().StringVarP(&category, "category", "c", config.CategoryAll, "report category for --pdf")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Restore a JSON export; defaults to the newest one in the reports directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				latest, ok := util.LatestFile(util.ReportsDir(config.AppName), config.ExportPrefix)
				if !ok {
					return errors.New("no export found; pass the file to import")
				}
				path = latest
			}

			var passphrase string
			encrypted, err := report.IsEncrypted(path)
			if err != nil {
				return err
			}
			if encrypted {
				if passphrase, err = readPassword("Export passphrase: "); err != nil {
					return err
				}
			}
			export, err := report.ReadJSON(path, passphrase)
			if err != nil {
				if errors.Is(err, util.ErrWrongPassphrase) {
					return fmt.Errorf("cannot decrypt %s: %w", path, err)
				}
				return err
			}

			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.ImportAll(ctx, export); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks and %d sessions from %s\n", len(export.Tasks), len(export.Sessions), path)
			return nil
		},
	}
}
