package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Export is a full snapshot of the store.
type Export struct {
	SchemaVersion int                    `json:"schema_version"`
	ExportedAt    time.Time              `json:"exported_at"`
	Settings      models.Settings        `json:"settings"`
	Theme         models.ThemeName       `json:"theme"`
	Categories    []string               `json:"categories"`
	Tasks         []models.Task          `json:"tasks"`
	Sessions      []models.SessionRecord `json:"sessions"`
}

func (d *Database) ExportAll(ctx context.Context) (Export, error) {
	settings, err := d.LoadSettings(ctx)
	if err != nil {
		return Export{}, err
	}
	theme, err := d.LoadTheme(ctx)
	if err != nil {
		return Export{}, err
	}
	categories, err := d.LoadCategories(ctx)
	if err != nil {
		return Export{}, err
	}
	tasks, err := d.LoadTasks(ctx)
	if err != nil {
		return Export{}, err
	}
	sessions, err := d.ListSessions(ctx, time.Time{})
	if err != nil {
		return Export{}, err
	}
	if sessions == nil {
		sessions = []models.SessionRecord{}
	}
	return Export{
		SchemaVersion: currentSchemaVersion,
		ExportedAt:    time.Now().UTC(),
		Settings:      settings,
		Theme:         theme,
		Categories:    categories,
		Tasks:         tasks,
		Sessions:      sessions,
	}, nil
}

// ImportAll replaces settings, theme, categories and tasks with the snapshot
// and appends sessions not already in the log.
func (d *Database) ImportAll(ctx context.Context, export Export) error {
	if export.SchemaVersion > currentSchemaVersion {
		return fmt.Errorf("import: %w: schema %d", ErrSchemaTooNew, export.SchemaVersion)
	}
	if err := export.Settings.Validate(); err != nil {
		return fmt.Errorf("import settings: %w", err)
	}
	for _, t := range export.Tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("import task %s: %w", t.ID, err)
		}
	}
	theme := export.Theme
	if !theme.Valid() {
		theme = models.ThemeLight
	}

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := setJSON(ctx, tx, config.KeySettings, export.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
		if err := setValue(ctx, tx, config.KeyTheme, string(theme)); err != nil {
			return fmt.Errorf("import theme: %w", err)
		}
		if len(export.Categories) > 0 {
			if err := setJSON(ctx, tx, config.KeyCategories, export.Categories); err != nil {
				return fmt.Errorf("import categories: %w", err)
			}
		}
		if err := saveTasks(ctx, tx, export.Tasks); err != nil {
			return fmt.Errorf("import tasks: %w", err)
		}
		for _, rec := range export.Sessions {
			exists, err := sessionExists(ctx, tx, rec)
			if err != nil {
				return fmt.Errorf("import session %d: %w", rec.ID, err)
			}
			if exists {
				continue
			}
			if _, err := insertSession(ctx, tx, rec); err != nil {
				return fmt.Errorf("import session %d: %w", rec.ID, err)
			}
		}
		return nil
	})
	return err
}
