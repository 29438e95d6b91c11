package service

import (
	"context"
	"fmt"
	"strings"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/repository"
)

// ValidationService provides domain validation that needs repository access
type ValidationService struct {
	taskRepo repository.TaskRepository
}

// NewValidationService creates a new ValidationService
func NewValidationService(taskRepo repository.TaskRepository) *ValidationService {
	return &ValidationService{
		taskRepo: taskRepo,
	}
}

// ValidateTitle validates a task title
func (s *ValidationService) ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return entity.ErrEmptyTaskTitle
	}
	return nil
}

// ValidateUniqueTitle checks that no other task uses the given title.
// Comparison is case-insensitive on trimmed titles. excludeID is the short
// ID of the task being edited, so a task can keep its own title; pass the
// empty string when creating.
func (s *ValidationService) ValidateUniqueTitle(ctx context.Context, title string, excludeID string) error {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks for title check: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(title))
	for _, task := range tasks {
		if excludeID != "" && task.ID().ShortID() == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(task.Title())) == normalized {
			return entity.ErrDuplicateTitle
		}
	}

	return nil
}
