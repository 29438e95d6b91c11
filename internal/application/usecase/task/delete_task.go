package task

import (
	"context"

	"taskdeck/internal/domain/service"
)

// DeleteTaskUseCase handles deleting a task
type DeleteTaskUseCase struct {
	taskService *service.TaskService
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(taskService *service.TaskService) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskService: taskService,
	}
}

// Execute deletes the task with the given ID
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskID string) error {
	return uc.taskService.DeleteTask(ctx, taskID)
}
