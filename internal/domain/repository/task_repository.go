package repository

import (
	"context"

	"taskdeck/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Save persists a task to storage
	Save(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its short or full ID
	FindByID(ctx context.Context, id string) (*entity.Task, error)

	// FindAll retrieves all tasks
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// Delete removes a task from storage
	Delete(ctx context.Context, id string) error

	// Exists checks if a task exists
	Exists(ctx context.Context, id string) (bool, error)

	// NextNumber reserves the next task sequence number
	NextNumber(ctx context.Context) (int, error)
}
