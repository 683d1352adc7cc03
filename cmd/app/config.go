package main

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(a.configPath); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%s: %w", a.configPath, err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:        %s\n", a.configPath)
			fmt.Fprintf(out, "data_dir:      %s\n", cfg.DataDir)
			fmt.Fprintf(out, "language:      %s\n", i18n.Detect(cfg.Language))
			fmt.Fprintf(out, "theme:         %s\n", cfg.Theme)
			fmt.Fprintf(out, "log_file:      %s\n", cfg.LogFile)
			fmt.Fprintf(out, "toast_seconds: %d\n", cfg.ToastSeconds)
			return nil
		},
	})
	return cmd
}
