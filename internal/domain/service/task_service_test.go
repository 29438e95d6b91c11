package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/valueobject"
)

// memoryTaskRepo is an in-memory TaskRepository for service tests
type memoryTaskRepo struct {
	tasks   map[string]*entity.Task // keyed by short ID
	counter int
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *memoryTaskRepo) Save(ctx context.Context, task *entity.Task) error {
	r.tasks[task.ID().ShortID()] = task
	return nil
}

func (r *memoryTaskRepo) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	taskID, err := valueobject.ParseTaskID(id)
	if err != nil {
		return nil, err
	}
	task, ok := r.tasks[taskID.ShortID()]
	if !ok {
		return nil, entity.ErrTaskNotFound
	}
	return task, nil
}

func (r *memoryTaskRepo) FindAll(ctx context.Context) ([]*entity.Task, error) {
	all := make([]*entity.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		all = append(all, task)
	}
	return all, nil
}

func (r *memoryTaskRepo) Delete(ctx context.Context, id string) error {
	taskID, err := valueobject.ParseTaskID(id)
	if err != nil {
		return err
	}
	if _, ok := r.tasks[taskID.ShortID()]; !ok {
		return entity.ErrTaskNotFound
	}
	delete(r.tasks, taskID.ShortID())
	return nil
}

func (r *memoryTaskRepo) Exists(ctx context.Context, id string) (bool, error) {
	taskID, err := valueobject.ParseTaskID(id)
	if err != nil {
		return false, err
	}
	_, ok := r.tasks[taskID.ShortID()]
	return ok, nil
}

func (r *memoryTaskRepo) NextNumber(ctx context.Context) (int, error) {
	r.counter++
	return r.counter, nil
}

func newTestService() (*TaskService, *memoryTaskRepo) {
	repo := newMemoryTaskRepo()
	return NewTaskService(repo, NewValidationService(repo)), repo
}

func TestCreateTask(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, TaskDraft{
		Title:     "  Ship release notes  ",
		Revenue:   250,
		TimeTaken: 1.5,
		Priority:  valueobject.PriorityHigh,
		Status:    valueobject.StatusTodo,
		Notes:     "draft in the shared doc",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if got := task.ID().String(); got != "TASK-1-ship-release-notes" {
		t.Errorf("ID = %q, want TASK-1-ship-release-notes", got)
	}
	if task.Title() != "Ship release notes" {
		t.Errorf("expected trimmed title, got %q", task.Title())
	}
	if task.Notes() != "draft in the shared doc" {
		t.Errorf("unexpected notes %q", task.Notes())
	}
	if _, ok := repo.tasks["TASK-1"]; !ok {
		t.Error("expected the task to be persisted")
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := newTestService()

	task, err := svc.CreateTask(context.Background(), TaskDraft{
		Title:     "No selections",
		TimeTaken: 1,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Priority() != valueobject.PriorityMedium {
		t.Errorf("expected default priority medium, got %q", task.Priority())
	}
	if task.Status() != valueobject.StatusTodo {
		t.Errorf("expected default status todo, got %q", task.Status())
	}
}

func TestCreateTaskRejectsDuplicateTitle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateTask(ctx, TaskDraft{Title: "Invoice Q3", TimeTaken: 1}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	_, err := svc.CreateTask(ctx, TaskDraft{Title: "  invoice q3  ", TimeTaken: 1})
	if !errors.Is(err, entity.ErrDuplicateTitle) {
		t.Errorf("expected ErrDuplicateTitle for a case-variant title, got %v", err)
	}

	_, err = svc.CreateTask(ctx, TaskDraft{Title: "   ", TimeTaken: 1})
	if !errors.Is(err, entity.ErrEmptyTaskTitle) {
		t.Errorf("expected ErrEmptyTaskTitle for a blank title, got %v", err)
	}
}

func TestCreateTaskPreservesProvidedTimestamps(t *testing.T) {
	svc, _ := newTestService()
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	completed := time.Date(2026, 2, 3, 16, 0, 0, 0, time.UTC)

	task, err := svc.CreateTask(context.Background(), TaskDraft{
		Title:       "Imported task",
		TimeTaken:   2,
		Status:      valueobject.StatusDone,
		CreatedAt:   created,
		CompletedAt: &completed,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if !task.CreatedAt().Equal(created) {
		t.Errorf("expected createdAt %v, got %v", created, task.CreatedAt())
	}
	if got := task.CompletedDate(); got == nil || !got.Equal(completed) {
		t.Errorf("expected completedAt %v, got %v", completed, got)
	}
}

func TestUpdateTask(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, TaskDraft{Title: "Original", Revenue: 100, TimeTaken: 2})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	originalCreatedAt := created.CreatedAt()

	updated, err := svc.UpdateTask(ctx, created.ID().ShortID(), TaskDraft{
		Title:     "Renamed",
		Revenue:   400,
		TimeTaken: 3,
		Priority:  valueobject.PriorityLow,
		Status:    valueobject.StatusDone,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Title() != "Renamed" || updated.Revenue() != 400 || updated.TimeTaken() != 3 {
		t.Error("expected editable fields replaced by the draft")
	}
	if !updated.CreatedAt().Equal(originalCreatedAt) {
		t.Error("expected the original creation timestamp to be carried forward")
	}
	if updated.CompletedDate() == nil {
		t.Error("expected a completed date after moving to done")
	}
}

func TestUpdateTaskKeepsOwnTitle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateTask(ctx, TaskDraft{Title: "Keep me", TimeTaken: 1})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.CreateTask(ctx, TaskDraft{Title: "Other task", TimeTaken: 1}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// Re-submitting the same title for the same task is not a duplicate
	if _, err := svc.UpdateTask(ctx, first.ID().ShortID(), TaskDraft{Title: "Keep me", TimeTaken: 1}); err != nil {
		t.Errorf("expected a task to keep its own title, got %v", err)
	}

	// Taking another task's title is
	_, err = svc.UpdateTask(ctx, first.ID().ShortID(), TaskDraft{Title: "other task", TimeTaken: 1})
	if !errors.Is(err, entity.ErrDuplicateTitle) {
		t.Errorf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, TaskDraft{Title: "Short lived", TimeTaken: 1})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := svc.DeleteTask(ctx, task.ID().ShortID()); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Error("expected the task removed from storage")
	}

	if err := svc.DeleteTask(ctx, "TASK-99"); !errors.Is(err, entity.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCreateTaskNumbersAreSequential(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		task, err := svc.CreateTask(ctx, TaskDraft{Title: fmt.Sprintf("Task %d", i), TimeTaken: 1})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
		if task.ID().Number() != i {
			t.Errorf("expected task number %d, got %d", i, task.ID().Number())
		}
	}
}
