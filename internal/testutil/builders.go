package testutil

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/google/uuid"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        uuid.New().String(),
			Name:      "Test Task",
			Category:  "Work",
			Priority:  models.PriorityMedium,
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithCategory(c string) *TaskBuilder {
	b.task.Category = c
	return b
}

func (b *TaskBuilder) WithPriority(p models.Priority) *TaskBuilder {
	b.task.Priority = p
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// SessionBuilder provides fluent API for creating test session records.
type SessionBuilder struct {
	rec models.SessionRecord
}

// NewSession starts from a full work session that ended now.
func NewSession() *SessionBuilder {
	end := time.Now()
	return &SessionBuilder{
		rec: models.SessionRecord{
			Kind:      models.SessionWork,
			StartedAt: end.Add(-25 * time.Minute),
			EndedAt:   end,
			Seconds:   25 * 60,
		},
	}
}

func (b *SessionBuilder) WithKind(kind string) *SessionBuilder {
	b.rec.Kind = kind
	return b
}

func (b *SessionBuilder) WithCategory(c string) *SessionBuilder {
	b.rec.Category = c
	return b
}

func (b *SessionBuilder) WithTask(t models.Task) *SessionBuilder {
	b.rec.TaskID = t.ID
	b.rec.TaskName = t.Name
	b.rec.Category = t.Category
	return b
}

// EndedAt moves the session so it ends at t, keeping its length.
func (b *SessionBuilder) EndedAt(t time.Time) *SessionBuilder {
	b.rec.StartedAt = t.Add(-time.Duration(b.rec.Seconds) * time.Second)
	b.rec.EndedAt = t
	return b
}

func (b *SessionBuilder) Build() models.SessionRecord {
	return b.rec
}
