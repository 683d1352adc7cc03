package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/akyairhashvil/pomo/internal/models"
)

func TestConcurrentTaskAdds(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task := models.NewTask(fmt.Sprintf("Task %d", i), "Work", models.PriorityLow)
			if err := db.AddTask(ctx, task); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent add failed: %v", err)
	}
	tasks, err := db.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("LoadTasks failed: %v", err)
	}
	if len(tasks) != 10 {
		t.Fatalf("expected 10 tasks, got %d", len(tasks))
	}
}
