package task

import (
	"context"

	"taskdeck/internal/application/dto"
	"taskdeck/internal/domain/repository"
)

// GetTaskUseCase handles retrieving a single task
type GetTaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewGetTaskUseCase creates a new GetTaskUseCase
func NewGetTaskUseCase(taskRepo repository.TaskRepository) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute retrieves a task by its short or full ID
func (uc *GetTaskUseCase) Execute(ctx context.Context, taskID string) (*dto.TaskDTO, error) {
	task, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	result := dto.TaskToDTO(task)
	return &result, nil
}
