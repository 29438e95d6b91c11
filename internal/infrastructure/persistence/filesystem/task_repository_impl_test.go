package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/domain/valueobject"
)

func newStoredTask(t *testing.T, number int, slugPart, title string) *entity.Task {
	t.Helper()
	id, err := valueobject.NewTaskID(number, slugPart)
	if err != nil {
		t.Fatalf("NewTaskID: %v", err)
	}
	task, err := entity.NewTask(id, title, 120, 2, valueobject.PriorityHigh, valueobject.StatusTodo)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return task
}

func TestSaveAndFindByID(t *testing.T) {
	repo := NewTaskRepository(t.TempDir())
	ctx := context.Background()

	task := newStoredTask(t, 1, "write-proposal", "Write proposal")
	task.UpdateNotes("first draft due friday")
	if err := task.MarkAsCompleted(); err != nil {
		t.Fatalf("MarkAsCompleted: %v", err)
	}

	if err := repo.Save(ctx, task); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tests := []struct {
		name string
		id   string
	}{
		{"full ID", "TASK-1-write-proposal"},
		{"short ID", "TASK-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, err := repo.FindByID(ctx, tt.id)
			if err != nil {
				t.Fatalf("FindByID(%q): %v", tt.id, err)
			}
			if loaded.Title() != "Write proposal" {
				t.Errorf("Title = %q", loaded.Title())
			}
			if loaded.Revenue() != 120 || loaded.TimeTaken() != 2 {
				t.Errorf("numeric fields = %v, %v", loaded.Revenue(), loaded.TimeTaken())
			}
			if loaded.Notes() != "first draft due friday" {
				t.Errorf("Notes = %q", loaded.Notes())
			}
			if loaded.Status() != valueobject.StatusDone {
				t.Errorf("Status = %q", loaded.Status())
			}
			if loaded.CompletedDate() == nil {
				t.Error("expected completed date to survive the round trip")
			}
			if !loaded.CreatedAt().Truncate(time.Second).Equal(task.CreatedAt().Truncate(time.Second)) {
				t.Errorf("CreatedAt = %v, want %v", loaded.CreatedAt(), task.CreatedAt())
			}
			if !loaded.ModifiedAt().Truncate(time.Second).Equal(task.ModifiedAt().Truncate(time.Second)) {
				t.Errorf("ModifiedAt = %v, want %v", loaded.ModifiedAt(), task.ModifiedAt())
			}
		})
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewTaskRepository(t.TempDir())

	_, err := repo.FindByID(context.Background(), "TASK-42")
	if !errors.Is(err, entity.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestFindAllSkipsUnreadableFolders(t *testing.T) {
	dir := t.TempDir()
	repo := NewTaskRepository(dir)
	ctx := context.Background()

	if err := repo.Save(ctx, newStoredTask(t, 1, "first", "First")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, newStoredTask(t, 2, "second", "Second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Junk alongside the task folders must not break listing
	if err := os.MkdirAll(filepath.Join(dir, "not-a-task"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "TASK-3-empty"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	repo := NewTaskRepository(dir)
	ctx := context.Background()

	if err := repo.Save(ctx, newStoredTask(t, 1, "doomed", "Doomed")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.Delete(ctx, "TASK-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "TASK-1-doomed")); !os.IsNotExist(err) {
		t.Error("expected the task folder removed")
	}

	exists, err := repo.Exists(ctx, "TASK-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("expected the task to be gone")
	}
}

func TestNextNumberIsMonotonic(t *testing.T) {
	repo := NewTaskRepository(t.TempDir())
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.NextNumber(ctx)
		if err != nil {
			t.Fatalf("NextNumber: %v", err)
		}
		if got != want {
			t.Errorf("NextNumber = %d, want %d", got, want)
		}
	}

	// Deleting the highest-numbered task must not recycle its number
	task := newStoredTask(t, 3, "latest", "Latest")
	if err := repo.Save(ctx, task); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "TASK-3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.NextNumber(ctx)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if got != 4 {
		t.Errorf("NextNumber after delete = %d, want 4", got)
	}
}

var _ repository.TaskRepository = (*TaskRepositoryImpl)(nil)
