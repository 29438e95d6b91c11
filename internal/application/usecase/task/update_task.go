package task

import (
	"context"

	"taskdeck/internal/application/dto"
	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/service"
)

// UpdateTaskUseCase handles editing an existing task from a submitted payload
type UpdateTaskUseCase struct {
	taskService *service.TaskService
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase
func NewUpdateTaskUseCase(taskService *service.TaskService) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskService: taskService,
	}
}

// Execute applies the payload to the task it targets and returns the result
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, payload dto.TaskPayload) (*dto.TaskDTO, error) {
	if !payload.IsEdit() {
		return nil, entity.ErrInvalidTaskID
	}

	draft, err := draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	task, err := uc.taskService.UpdateTask(ctx, payload.ID, draft)
	if err != nil {
		return nil, err
	}

	result := dto.TaskToDTO(task)
	return &result, nil
}
