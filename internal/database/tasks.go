package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// LoadTasks returns the stored task list in insertion order.
func (d *Database) LoadTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := loadTasks(ctx, d.DB)
	return tasks, wrapKVErr("load", config.KeyTasks, err)
}

// SaveTasks replaces the whole task list.
func (d *Database) SaveTasks(ctx context.Context, tasks []models.Task) error {
	return wrapKVErr("save", config.KeyTasks, saveTasks(ctx, d.DB, tasks))
}

func (d *Database) AddTask(ctx context.Context, task models.Task) error {
	if err := task.Validate(); err != nil {
		return wrapTaskErr("add", task.ID, err)
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		tasks, err := loadTasks(ctx, tx)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			if t.ID == task.ID {
				return fmt.Errorf("duplicate id")
			}
		}
		return saveTasks(ctx, tx, append(tasks, task))
	})
	return wrapTaskErr("add", task.ID, err)
}

// UpdateTask replaces the task with the same id.
func (d *Database) UpdateTask(ctx context.Context, task models.Task) error {
	if err := task.Validate(); err != nil {
		return wrapTaskErr("update", task.ID, err)
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		tasks, err := loadTasks(ctx, tx)
		if err != nil {
			return err
		}
		idx := indexOfTask(tasks, task.ID)
		if idx < 0 {
			return ErrNotFound
		}
		tasks[idx] = task
		return saveTasks(ctx, tx, tasks)
	})
	return wrapTaskErr("update", task.ID, err)
}

func (d *Database) DeleteTask(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		tasks, err := loadTasks(ctx, tx)
		if err != nil {
			return err
		}
		idx := indexOfTask(tasks, id)
		if idx < 0 {
			return ErrNotFound
		}
		return saveTasks(ctx, tx, append(tasks[:idx], tasks[idx+1:]...))
	})
	return wrapTaskErr("delete", id, err)
}

func (d *Database) GetTask(ctx context.Context, id string) (models.Task, error) {
	tasks, err := loadTasks(ctx, d.DB)
	if err != nil {
		return models.Task{}, wrapTaskErr("get", id, err)
	}
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return models.Task{}, wrapTaskErr("get", id, ErrNotFound)
	}
	return tasks[idx], nil
}

func loadTasks(ctx context.Context, q querier) ([]models.Task, error) {
	var tasks []models.Task
	if _, err := getJSON(ctx, q, config.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: task %d: %w", ErrMalformedValue, i, err)
		}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func saveTasks(ctx context.Context, q querier, tasks []models.Task) error {
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return setJSON(ctx, q, config.KeyTasks, tasks)
}

func indexOfTask(tasks []models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
