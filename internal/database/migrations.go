package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/util"
)

const currentSchemaVersion = 2

type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx *sql.Tx) error
}

// migrations run in order; each lifts the store to its version.
var migrations = []migration{
	{version: 2, name: "task createTime to createdAt", apply: migrateTaskCreatedAt},
}

func (d *Database) SchemaVersion(ctx context.Context) (int, error) {
	return schemaVersion(ctx, d.DB)
}

func (d *Database) migrate(ctx context.Context) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		version, err := schemaVersion(ctx, tx)
		if err != nil {
			return err
		}
		if version > currentSchemaVersion {
			return fmt.Errorf("%w: schema %d, supported %d", ErrSchemaTooNew, version, currentSchemaVersion)
		}
		for _, m := range migrations {
			if m.version <= version {
				continue
			}
			util.Debugf("migrate: applying %d (%s)", m.version, m.name)
			if err := m.apply(ctx, tx); err != nil {
				return fmt.Errorf("migration %d: %w", m.version, err)
			}
			version = m.version
		}
		return setValue(ctx, tx, config.KeySchemaVersion, strconv.Itoa(currentSchemaVersion))
	})
}

// schemaVersion reads the stored version. Stores written before versioning
// carry data but no version and count as version 1; empty stores are current.
func schemaVersion(ctx context.Context, q querier) (int, error) {
	raw, ok, err := getValue(ctx, q, config.KeySchemaVersion)
	if err != nil {
		return 0, err
	}
	if ok {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: schema version %q", ErrMalformedValue, raw)
		}
		return v, nil
	}
	var count int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(1) FROM kv").Scan(&count); err != nil {
		return 0, err
	}
	if count == 0 {
		return currentSchemaVersion, nil
	}
	return 1, nil
}

// migrateTaskCreatedAt rewrites tasks saved with a millisecond createTime.
// A task list that does not parse is left untouched so nothing is lost.
func migrateTaskCreatedAt(ctx context.Context, tx *sql.Tx) error {
	raw, ok, err := getValue(ctx, tx, config.KeyTasks)
	if err != nil || !ok {
		return err
	}
	var tasks []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		util.Debugf("migrate: tasks value does not parse, leaving as is: %v", err)
		return nil
	}
	changed := false
	for _, task := range tasks {
		legacy, ok := task["createTime"]
		if !ok {
			continue
		}
		var ms int64
		if err := json.Unmarshal(legacy, &ms); err != nil {
			continue
		}
		if _, has := task["createdAt"]; !has {
			stamp, err := json.Marshal(time.UnixMilli(ms).UTC())
			if err != nil {
				return err
			}
			task["createdAt"] = stamp
		}
		delete(task, "createTime")
		changed = true
	}
	if !changed {
		return nil
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return setValue(ctx, tx, config.KeyTasks, string(data))
}
