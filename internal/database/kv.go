package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// GetValue returns the raw value stored under key.
func (d *Database) GetValue(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := getValue(ctx, d.DB, key)
	return v, ok, wrapKVErr("get", key, err)
}

// SetValue stores value under key; the last write wins.
func (d *Database) SetValue(ctx context.Context, key, value string) error {
	return wrapKVErr("set", key, setValue(ctx, d.DB, key, value))
}

func (d *Database) DeleteValue(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return wrapKVErr("delete", key, err)
}

func getValue(ctx context.Context, q querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func setValue(ctx context.Context, q querier, key, value string) error {
	_, err := q.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value)
	return err
}

// getJSON decodes the value under key into dst. A missing key leaves dst untouched.
func getJSON(ctx context.Context, q querier, key string, dst interface{}) (bool, error) {
	raw, ok, err := getValue(ctx, q, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, q querier, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return setValue(ctx, q, key, string(data))
}
