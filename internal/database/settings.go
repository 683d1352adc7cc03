package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// LoadSettings returns the stored settings, or the defaults when none are stored.
// A stored value that fails to decode or validate yields the defaults together
// with an error wrapping ErrMalformedValue.
func (d *Database) LoadSettings(ctx context.Context) (models.Settings, error) {
	s := models.DefaultSettings()
	ok, err := getJSON(ctx, d.DB, config.KeySettings, &s)
	if err != nil {
		return models.DefaultSettings(), wrapKVErr("load", config.KeySettings, err)
	}
	if !ok {
		return s, nil
	}
	if err := s.Validate(); err != nil {
		return models.DefaultSettings(), wrapKVErr("load", config.KeySettings, fmt.Errorf("%w: %w", ErrMalformedValue, err))
	}
	return s, nil
}

func (d *Database) SaveSettings(ctx context.Context, s models.Settings) error {
	if err := s.Validate(); err != nil {
		return wrapKVErr("save", config.KeySettings, err)
	}
	return wrapKVErr("save", config.KeySettings, setJSON(ctx, d.DB, config.KeySettings, s))
}

// LoadTheme returns the stored colour scheme, light by default.
func (d *Database) LoadTheme(ctx context.Context) (models.ThemeName, error) {
	raw, ok, err := getValue(ctx, d.DB, config.KeyTheme)
	if err != nil {
		return models.ThemeLight, wrapKVErr("load", config.KeyTheme, err)
	}
	if !ok {
		return models.ThemeLight, nil
	}
	theme := models.ThemeName(strings.TrimSpace(raw))
	if !theme.Valid() {
		return models.ThemeLight, wrapKVErr("load", config.KeyTheme, fmt.Errorf("%w: theme %q", ErrMalformedValue, raw))
	}
	return theme, nil
}

func (d *Database) SaveTheme(ctx context.Context, theme models.ThemeName) error {
	if !theme.Valid() {
		return wrapKVErr("save", config.KeyTheme, fmt.Errorf("%w: theme %q", models.ErrInvalid, theme))
	}
	return wrapKVErr("save", config.KeyTheme, setValue(ctx, d.DB, config.KeyTheme, string(theme)))
}
