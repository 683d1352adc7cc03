package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// SettingsRepository defines preference storage.
type SettingsRepository interface {
	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
	LoadTheme(ctx context.Context) (models.ThemeName, error)
	SaveTheme(ctx context.Context, theme models.ThemeName) error
}

// TaskRepository defines task and category storage.
type TaskRepository interface {
	LoadTasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, task models.Task) error
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
	LoadCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) (bool, error)
}

// SessionRepository defines the completed session log.
type SessionRepository interface {
	RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error)
	ListSessions(ctx context.Context, since time.Time) ([]models.SessionRecord, error)
	ListWorkSessions(ctx context.Context, since time.Time, category string) ([]models.SessionRecord, error)
	RecentSessions(ctx context.Context, limit int) ([]models.SessionRecord, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	TaskRepository
	SessionRepository
	ExportAll(ctx context.Context) (Export, error)
	ImportAll(ctx context.Context, export Export) error
}

var _ Repository = (*Database)(nil)
