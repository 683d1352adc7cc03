package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries the persistent flags shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Pomodoro timer with tasks and statistics",
		Version:       tui.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.SetVerbose(a.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(a.runCmd())
	root.AddCommand(a.tasksCmd())
	root.AddCommand(a.statsCmd())
	root.AddCommand(a.logCmd())
	root.AddCommand(a.exportCmd())
	root.AddCommand(a.importCmd())
	root.AddCommand(a.configCmd())
	return root
}

func (a *app) loadConfig() (config.File, error) {
	return config.Load(a.configPath)
}

// openStore loads the config and opens the store it points at.
func (a *app) openStore(ctx context.Context) (*database.Database, config.File, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		if errors.Is(err, database.ErrSchemaTooNew) {
			return nil, cfg, fmt.Errorf("%s was written by a newer %s; upgrade to open it", cfg.DBPath(), config.AppName)
		}
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	util.Debugf("opened store %s", db.Path())
	return db, cfg, nil
}

// seedTheme stores the configured theme the first time the store is used.
func seedTheme(ctx context.Context, db *database.Database, cfg config.File) error {
	_, ok, err := db.GetValue(ctx, config.KeyTheme)
	if err != nil || ok {
		return err
	}
	theme := models.ThemeName(strings.ToLower(strings.TrimSpace(cfg.Theme)))
	if !theme.Valid() {
		return nil
	}
	return db.SaveTheme(ctx, theme)
}

func (a *app) runTUI(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the timer needs an interactive terminal; see --help for scriptable commands")
	}
	db, cfg, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	logFile, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	util.LogError("Seed theme", seedTheme(ctx, db, cfg))
	lang := i18n.Detect(cfg.Language)
	util.Debugf("language %s", lang)

	model := tui.NewMainModel(ctx, db, tui.Options{
		Notifier: notify.NewPlayer(os.Stdout),
		Lang:     i18n.New(lang),
		ToastTTL: cfg.ToastDuration(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// openLog redirects the log package into cfg.LogFile, creating its directory.
func openLog(cfg config.File) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.LogFile, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// readPassword prompts on stderr and reads without echo.
var readPassword = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

// promptNewPassphrase asks twice and enforces the passphrase rules.
func promptNewPassphrase() (string, error) {
	pass, err := readPassword("Export passphrase: ")
	if err != nil {
		return "", err
	}
	if err := util.ValidatePassphrase(pass); err != nil {
		return "", fmt.Errorf("passphrase too weak: %w", err)
	}
	again, err := readPassword("Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if again != pass {
		return "", errors.New("passphrases do not match")
	}
	return pass, nil
}
