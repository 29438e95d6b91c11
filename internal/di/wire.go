//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"taskdeck/internal/application/usecase/task"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/domain/service"
	"taskdeck/internal/infrastructure/config"
	"taskdeck/internal/infrastructure/persistence/filesystem"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Repositories
	TaskRepo repository.TaskRepository

	// Domain Services
	ValidationService *service.ValidationService
	TaskService       *service.TaskService

	// Use Cases
	CreateTaskUseCase *task.CreateTaskUseCase
	UpdateTaskUseCase *task.UpdateTaskUseCase
	ListTasksUseCase  *task.ListTasksUseCase
	GetTaskUseCase    *task.GetTaskUseCase
	DeleteTaskUseCase *task.DeleteTaskUseCase
}

// InitializeContainer sets up all dependencies
func InitializeContainer() (*Container, error) {
	wire.Build(
		// Config
		ProvideConfig,

		// Repositories
		ProvideTaskRepository,

		// Domain Services
		ProvideValidationService,
		ProvideTaskService,

		// Use Cases
		task.NewCreateTaskUseCase,
		task.NewUpdateTaskUseCase,
		task.NewListTasksUseCase,
		task.NewGetTaskUseCase,
		task.NewDeleteTaskUseCase,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}

// InitializeContainerWithConfig builds the container around an already
// loaded configuration (used when --config points at an explicit file)
func InitializeContainerWithConfig(cfg *config.Config) (*Container, error) {
	wire.Build(
		ProvideTaskRepository,
		ProvideValidationService,
		ProvideTaskService,

		task.NewCreateTaskUseCase,
		task.NewUpdateTaskUseCase,
		task.NewListTasksUseCase,
		task.NewGetTaskUseCase,
		task.NewDeleteTaskUseCase,

		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}

// Provider functions

func ProvideConfig() (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func ProvideTaskRepository(cfg *config.Config) repository.TaskRepository {
	return filesystem.NewTaskRepository(cfg.Storage.TasksPath)
}

func ProvideValidationService(taskRepo repository.TaskRepository) *service.ValidationService {
	return service.NewValidationService(taskRepo)
}

func ProvideTaskService(
	taskRepo repository.TaskRepository,
	validationService *service.ValidationService,
) *service.TaskService {
	return service.NewTaskService(taskRepo, validationService)
}
