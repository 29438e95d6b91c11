package task

import (
	"context"
	"fmt"

	"taskdeck/internal/application/dto"
	"taskdeck/internal/domain/service"
	"taskdeck/internal/domain/valueobject"
)

// CreateTaskUseCase handles creating a new task from a submitted payload
type CreateTaskUseCase struct {
	taskService *service.TaskService
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase
func NewCreateTaskUseCase(taskService *service.TaskService) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskService: taskService,
	}
}

// Execute creates a task from the payload and returns the persisted task
func (uc *CreateTaskUseCase) Execute(ctx context.Context, payload dto.TaskPayload) (*dto.TaskDTO, error) {
	draft, err := draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	task, err := uc.taskService.CreateTask(ctx, draft)
	if err != nil {
		return nil, err
	}

	result := dto.TaskToDTO(task)
	return &result, nil
}

// draftFromPayload converts a submitted payload into a validated domain draft
func draftFromPayload(payload dto.TaskPayload) (service.TaskDraft, error) {
	priority, err := valueobject.ParsePriority(payload.Priority)
	if err != nil {
		return service.TaskDraft{}, fmt.Errorf("invalid payload: %w", err)
	}

	status, err := valueobject.ParseStatus(payload.Status)
	if err != nil {
		return service.TaskDraft{}, fmt.Errorf("invalid payload: %w", err)
	}

	return service.TaskDraft{
		Title:       payload.Title,
		Revenue:     payload.Revenue,
		TimeTaken:   payload.TimeTaken,
		Priority:    priority,
		Status:      status,
		Notes:       payload.Notes,
		CreatedAt:   payload.CreatedAt,
		CompletedAt: payload.CompletedAt,
	}, nil
}
