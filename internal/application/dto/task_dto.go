package dto

import (
	"time"

	"taskdeck/internal/domain/entity"
)

// TaskDTO represents a task data transfer object
type TaskDTO struct {
	ID          string     `json:"id" yaml:"id"`
	ShortID     string     `json:"short_id" yaml:"short_id"`
	Title       string     `json:"title" yaml:"title"`
	Revenue     float64    `json:"revenue" yaml:"revenue"`
	TimeTaken   float64    `json:"time_taken" yaml:"time_taken"`
	Priority    string     `json:"priority" yaml:"priority"`
	Status      string     `json:"status" yaml:"status"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at" yaml:"modified_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	FilePath    string     `json:"file_path,omitempty" yaml:"file_path,omitempty"`
}

// TaskPayload is the record a confirmed form submit emits: a task without
// an ID for creation, or with the original ID for an edit. The caller owns
// persistence.
type TaskPayload struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Revenue     float64    `json:"revenue"`
	TimeTaken   float64    `json:"time_taken"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsEdit reports whether the payload targets an existing task
func (p TaskPayload) IsEdit() bool {
	return p.ID != ""
}

// TaskToDTO converts a Task entity to its DTO
func TaskToDTO(task *entity.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID().String(),
		ShortID:     task.ID().ShortID(),
		Title:       task.Title(),
		Revenue:     task.Revenue(),
		TimeTaken:   task.TimeTaken(),
		Priority:    task.Priority().String(),
		Status:      task.Status().String(),
		Notes:       task.Notes(),
		CreatedAt:   task.CreatedAt(),
		ModifiedAt:  task.ModifiedAt(),
		CompletedAt: task.CompletedDate(),
	}
}

// TaskToDTOWithPath converts a Task entity to its DTO including the storage path
func TaskToDTOWithPath(task *entity.Task, filePath string) TaskDTO {
	d := TaskToDTO(task)
	d.FilePath = filePath
	return d
}
