package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_store_test.go -package=tui
type Store interface {
	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
	LoadTheme(ctx context.Context) (models.ThemeName, error)
	SaveTheme(ctx context.Context, theme models.ThemeName) error

	LoadTasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, task models.Task) error
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
	LoadCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) (bool, error)

	RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error)
	ListSessions(ctx context.Context, since time.Time) ([]models.SessionRecord, error)

	ExportAll(ctx context.Context) (database.Export, error)
	ImportAll(ctx context.Context, export database.Export) error
}

var _ Store = (*database.Database)(nil)
