package filesystem

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/domain/valueobject"
	"taskdeck/internal/infrastructure/persistence/mapper"
	"taskdeck/internal/infrastructure/serialization"
	"taskdeck/pkg/filesystem"
)

// TaskRepositoryImpl implements TaskRepository using filesystem storage.
// Each task lives in its own directory named by the full task ID, with a
// task.md file holding frontmatter metadata and the notes as body.
type TaskRepositoryImpl struct {
	pathBuilder *PathBuilder
}

// NewTaskRepository creates a new filesystem-based task repository
func NewTaskRepository(tasksPath string) repository.TaskRepository {
	return &TaskRepositoryImpl{
		pathBuilder: NewPathBuilder(tasksPath),
	}
}

// Save persists a task to the filesystem
func (r *TaskRepositoryImpl) Save(ctx context.Context, task *entity.Task) error {
	taskDir := r.pathBuilder.TaskDir(task.ID().String())

	if err := filesystem.EnsureDir(taskDir, 0755); err != nil {
		return fmt.Errorf("failed to create task directory: %w", err)
	}

	frontmatter, content, err := mapper.TaskToStorage(task)
	if err != nil {
		return err
	}

	data, err := serialization.SerializeFrontmatter(frontmatter, content)
	if err != nil {
		return err
	}

	metadataPath := r.pathBuilder.TaskMetadata(task.ID().String())
	if err := filesystem.SafeWrite(metadataPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}

	return nil
}

// FindByID retrieves a task by its short or full ID
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	folderName, err := r.resolveFolder(id)
	if err != nil {
		return nil, err
	}

	return r.loadTask(folderName)
}

// FindAll retrieves all tasks
func (r *TaskRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Task, error) {
	rootPath := r.pathBuilder.TasksRoot()

	if err := filesystem.EnsureDir(rootPath, 0755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks directory: %w", err)
	}

	tasks := make([]*entity.Task, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		task, err := r.loadTask(entry.Name())
		if err != nil {
			// Skip folders that don't hold a readable task
			continue
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Delete removes a task from storage
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	folderName, err := r.resolveFolder(id)
	if err != nil {
		return err
	}

	return filesystem.RemoveDir(r.pathBuilder.TaskDir(folderName))
}

// Exists checks if a task exists
func (r *TaskRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.resolveFolder(id)
	if err == entity.ErrTaskNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NextNumber reserves the next task sequence number. The counter file keeps
// numbers monotonic even after the highest-numbered task is deleted.
func (r *TaskRepositoryImpl) NextNumber(ctx context.Context) (int, error) {
	if err := filesystem.EnsureDir(r.pathBuilder.TasksRoot(), 0755); err != nil {
		return 0, err
	}

	counterPath := r.pathBuilder.Counter()
	current := 0

	data, err := os.ReadFile(counterPath)
	if err == nil {
		current, err = strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			return 0, fmt.Errorf("corrupt counter file %s: %w", counterPath, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to read counter file: %w", err)
	}

	next := current + 1
	if err := filesystem.SafeWrite(counterPath, []byte(strconv.Itoa(next)+"\n"), 0644); err != nil {
		return 0, fmt.Errorf("failed to update counter file: %w", err)
	}

	return next, nil
}

// loadTask reads and parses a task from its folder name
func (r *TaskRepositoryImpl) loadTask(folderName string) (*entity.Task, error) {
	taskID, err := valueobject.ParseTaskID(folderName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.pathBuilder.TaskMetadata(folderName))
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	doc, err := serialization.ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	return mapper.TaskFromStorage(doc, taskID)
}

// resolveFolder maps a short or full task ID to an existing folder name
func (r *TaskRepositoryImpl) resolveFolder(id string) (string, error) {
	taskID, err := valueobject.ParseTaskID(id)
	if err != nil {
		return "", err
	}

	// Full ID: check the folder directly
	exists, err := filesystem.Exists(r.pathBuilder.TaskDir(taskID.String()))
	if err != nil {
		return "", err
	}
	if exists {
		return taskID.String(), nil
	}

	// Short ID: scan for a folder with a matching prefix
	entries, err := os.ReadDir(r.pathBuilder.TasksRoot())
	if err != nil {
		if os.IsNotExist(err) {
			return "", entity.ErrTaskNotFound
		}
		return "", fmt.Errorf("failed to read tasks directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		entryID, err := valueobject.ParseTaskID(entry.Name())
		if err != nil {
			continue
		}
		if entryID.Equals(taskID) {
			return entry.Name(), nil
		}
	}

	return "", entity.ErrTaskNotFound
}
