package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// RecordSession appends a completed phase to the session log.
func (d *Database) RecordSession(ctx context.Context, rec models.SessionRecord) (int64, error) {
	id, err := insertSession(ctx, d.DB, rec)
	return id, wrapSessionErr("record", err)
}

// ListSessions returns sessions that ended at or after since, oldest first.
// A zero since returns the whole log.
func (d *Database) ListSessions(ctx context.Context, since time.Time) ([]models.SessionRecord, error) {
	q := NewSessionQuery()
	if !since.IsZero() {
		q.WhereEndedSince(since)
	}
	out, err := querySessions(ctx, d.DB, q)
	return out, wrapSessionErr("list", err)
}

// ListWorkSessions returns work sessions that ended at or after since. An
// empty category or config.CategoryAll keeps every category.
func (d *Database) ListWorkSessions(ctx context.Context, since time.Time, category string) ([]models.SessionRecord, error) {
	q := NewSessionQuery().WhereKind(models.SessionWork)
	if !since.IsZero() {
		q.WhereEndedSince(since)
	}
	if category != "" && category != config.CategoryAll {
		q.WhereCategory(category)
	}
	out, err := querySessions(ctx, d.DB, q)
	return out, wrapSessionErr("list", err)
}

// RecentSessions returns up to limit sessions, newest first.
func (d *Database) RecentSessions(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	q := NewSessionQuery().OrderBy("ended_at DESC, id DESC").Limit(limit)
	out, err := querySessions(ctx, d.DB, q)
	return out, wrapSessionErr("recent", err)
}

func insertSession(ctx context.Context, q querier, rec models.SessionRecord) (int64, error) {
	res, err := q.ExecContext(ctx, `INSERT INTO sessions (kind, task_id, task_name, category, started_at, ended_at, seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Kind,
		nullableString(rec.TaskID),
		nullableString(rec.TaskName),
		nullableString(rec.Category),
		rec.StartedAt.UTC(),
		rec.EndedAt.UTC(),
		rec.Seconds,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func sessionExists(ctx context.Context, q querier, rec models.SessionRecord) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `SELECT COUNT(1) FROM sessions WHERE kind = ? AND started_at = ? AND ended_at = ?`,
		rec.Kind, rec.StartedAt.UTC(), rec.EndedAt.UTC()).Scan(&count)
	return count > 0, err
}

func querySessions(ctx context.Context, q querier, sq *SessionQuery) ([]models.SessionRecord, error) {
	query, args := sq.Build()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanSession(row interface{ Scan(...interface{}) error }) (models.SessionRecord, error) {
	var rec models.SessionRecord
	var taskID, taskName, category sql.NullString
	if err := row.Scan(
		&rec.ID,
		&rec.Kind,
		&taskID,
		&taskName,
		&category,
		&rec.StartedAt,
		&rec.EndedAt,
		&rec.Seconds,
	); err != nil {
		return models.SessionRecord{}, err
	}
	rec.TaskID = taskID.String
	rec.TaskName = taskName.String
	rec.Category = category.String
	return rec, nil
}
