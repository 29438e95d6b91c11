package filesystem

import (
	"path/filepath"
)

const (
	taskMetadataFile = "task.md"
	counterFile      = ".counter"
)

// PathBuilder constructs filesystem paths for task storage
type PathBuilder struct {
	tasksRootPath string
}

// NewPathBuilder creates a new PathBuilder
func NewPathBuilder(tasksRootPath string) *PathBuilder {
	return &PathBuilder{
		tasksRootPath: tasksRootPath,
	}
}

// TasksRoot returns the root path for all tasks
func (pb *PathBuilder) TasksRoot() string {
	return pb.tasksRootPath
}

// TaskDir returns the directory path for a task folder name (full ID)
func (pb *PathBuilder) TaskDir(taskFolderName string) string {
	return filepath.Join(pb.tasksRootPath, taskFolderName)
}

// TaskMetadata returns the path to a task's task.md file
func (pb *PathBuilder) TaskMetadata(taskFolderName string) string {
	return filepath.Join(pb.TaskDir(taskFolderName), taskMetadataFile)
}

// Counter returns the path to the sequence counter file
func (pb *PathBuilder) Counter() string {
	return filepath.Join(pb.tasksRootPath, counterFile)
}
