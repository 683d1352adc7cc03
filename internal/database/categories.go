package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// LoadCategories returns the user's categories, seeded with the defaults.
func (d *Database) LoadCategories(ctx context.Context) ([]string, error) {
	cats, err := loadCategories(ctx, d.DB)
	return cats, wrapKVErr("load", config.KeyCategories, err)
}

// AddCategory appends name unless it already exists (ignoring case).
func (d *Database) AddCategory(ctx context.Context, name string) (bool, error) {
	var added bool
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		cats, err := loadCategories(ctx, tx)
		if err != nil {
			return err
		}
		cats, added = util.AppendUnique(cats, name)
		if !added {
			return nil
		}
		return setJSON(ctx, tx, config.KeyCategories, cats)
	})
	return added, wrapKVErr("add", config.KeyCategories, err)
}

func loadCategories(ctx context.Context, q querier) ([]string, error) {
	var cats []string
	ok, err := getJSON(ctx, q, config.KeyCategories, &cats)
	if err != nil {
		return append([]string(nil), models.DefaultCategories...), err
	}
	if !ok || len(cats) == 0 {
		return append([]string(nil), models.DefaultCategories...), nil
	}
	return cats, nil
}
