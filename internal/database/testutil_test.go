package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

type TestDataBuilder struct {
	t        *testing.T
	ctx      context.Context
	db       *Database
	tasks    []models.Task
	sessions []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithTasks(count int, category string) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		task := models.NewTask(fmt.Sprintf("Task %d", len(b.tasks)+1), category, models.PriorityMedium)
		if err := b.db.AddTask(b.ctx, task); err != nil {
			b.t.Fatalf("AddTask failed: %v", err)
		}
		b.tasks = append(b.tasks, task)
	}
	return b
}

// WithWorkSessions records count 25 minute work sessions ending at end, one hour apart.
func (b *TestDataBuilder) WithWorkSessions(count int, category string, end time.Time) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		ended := end.Add(-time.Duration(i) * time.Hour)
		id, err := b.db.RecordSession(b.ctx, models.SessionRecord{
			Kind:      models.SessionWork,
			Category:  category,
			StartedAt: ended.Add(-25 * time.Minute),
			EndedAt:   ended,
			Seconds:   25 * 60,
		})
		if err != nil {
			b.t.Fatalf("RecordSession failed: %v", err)
		}
		b.sessions = append(b.sessions, id)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) Tasks() []models.Task {
	return b.tasks
}
