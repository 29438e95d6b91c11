package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/domain/valueobject"
	"taskdeck/pkg/slug"
)

// TaskDraft carries the validated field values for a create or update.
// Zero-value Priority and Status fall back to medium and todo.
type TaskDraft struct {
	Title       string
	Revenue     float64
	TimeTaken   float64
	Priority    valueobject.Priority
	Status      valueobject.Status
	Notes       string
	CreatedAt   time.Time  // preserved on edit; zero means "stamp now"
	CompletedAt *time.Time // preserved on edit when already done
}

// TaskService provides high-level domain operations for tasks
type TaskService struct {
	taskRepo          repository.TaskRepository
	validationService *ValidationService
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	validationService *ValidationService,
) *TaskService {
	return &TaskService{
		taskRepo:          taskRepo,
		validationService: validationService,
	}
}

// CreateTask creates a new task with validation
func (s *TaskService) CreateTask(ctx context.Context, draft TaskDraft) (*entity.Task, error) {
	title := strings.TrimSpace(draft.Title)

	if err := s.validationService.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := s.validationService.ValidateUniqueTitle(ctx, title, ""); err != nil {
		return nil, err
	}

	number, err := s.taskRepo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve task number: %w", err)
	}

	id, err := valueobject.NewTaskID(number, slug.Generate(title))
	if err != nil {
		return nil, err
	}

	task, err := entity.NewTask(id, title, draft.Revenue, draft.TimeTaken,
		s.priorityOrDefault(draft.Priority), s.statusOrDefault(draft.Status))
	if err != nil {
		return nil, err
	}

	task.UpdateNotes(strings.TrimSpace(draft.Notes))
	if !draft.CreatedAt.IsZero() {
		task.SetCreatedAt(draft.CreatedAt)
	}
	if draft.CompletedAt != nil {
		task.SetCompletedDate(*draft.CompletedAt)
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces a task's editable fields with the draft values.
// The original creation timestamp is carried forward.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, draft TaskDraft) (*entity.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(draft.Title)
	if err := s.validationService.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := s.validationService.ValidateUniqueTitle(ctx, title, task.ID().ShortID()); err != nil {
		return nil, err
	}

	if err := task.UpdateTitle(title); err != nil {
		return nil, err
	}
	if err := task.UpdateRevenue(draft.Revenue); err != nil {
		return nil, err
	}
	if err := task.UpdateTimeTaken(draft.TimeTaken); err != nil {
		return nil, err
	}
	if err := task.UpdatePriority(s.priorityOrDefault(draft.Priority)); err != nil {
		return nil, err
	}
	if err := task.UpdateStatus(s.statusOrDefault(draft.Status)); err != nil {
		return nil, err
	}
	task.UpdateNotes(strings.TrimSpace(draft.Notes))

	if draft.CompletedAt != nil {
		task.SetCompletedDate(*draft.CompletedAt)
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	exists, err := s.taskRepo.Exists(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exists {
		return entity.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) priorityOrDefault(p valueobject.Priority) valueobject.Priority {
	if !p.IsSet() {
		return valueobject.PriorityMedium
	}
	return p
}

func (s *TaskService) statusOrDefault(st valueobject.Status) valueobject.Status {
	if !st.IsSet() {
		return valueobject.StatusTodo
	}
	return st
}
