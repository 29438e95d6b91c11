package task

import (
	"context"
	"path/filepath"
	"sort"

	"taskdeck/internal/application/dto"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/infrastructure/config"
)

// ListTasksUseCase handles listing all tasks
type ListTasksUseCase struct {
	taskRepo repository.TaskRepository
	config   *config.Config
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(taskRepo repository.TaskRepository, cfg *config.Config) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		config:   cfg,
	}
}

// Execute lists all tasks with their file paths, oldest first
func (uc *ListTasksUseCase) Execute(ctx context.Context) ([]dto.TaskDTO, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID().Number() < tasks[j].ID().Number()
	})

	result := make([]dto.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		filePath := filepath.Join(uc.config.Storage.TasksPath, task.ID().String(), "task.md")
		result = append(result, dto.TaskToDTOWithPath(task, filePath))
	}

	return result, nil
}

// ExistingTitles returns the titles of all stored tasks in ID order. The
// form dialog feeds these into its duplicate-title check.
func (uc *ListTasksUseCase) ExistingTitles(ctx context.Context) ([]string, error) {
	tasks, err := uc.Execute(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}

	return titles, nil
}
