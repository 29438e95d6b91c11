package mapper

import (
	"fmt"
	"time"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/valueobject"
	"taskdeck/internal/infrastructure/serialization"
)

// TaskToStorage converts a Task entity to frontmatter plus markdown content.
// Notes become the document body; everything else is metadata. Only the
// short ID goes into metadata, the folder name carries the full ID.
func TaskToStorage(task *entity.Task) (map[string]interface{}, string, error) {
	frontmatter := map[string]interface{}{
		"id":         task.ID().ShortID(),
		"title":      task.Title(),
		"revenue":    task.Revenue(),
		"time_taken": task.TimeTaken(),
		"priority":   task.Priority().String(),
		"status":     task.Status().String(),
		"created":    task.CreatedAt().Format(time.RFC3339),
		"modified":   task.ModifiedAt().Format(time.RFC3339),
	}

	if completed := task.CompletedDate(); completed != nil {
		frontmatter["completed"] = completed.Format(time.RFC3339)
	}

	return frontmatter, task.Notes(), nil
}

// TaskFromStorage converts a parsed task.md document back to a Task entity.
// The taskID parameter comes from the folder name (PREFIX-NUMBER-slug)
// while the metadata contains only the short ID (PREFIX-NUMBER).
func TaskFromStorage(doc *serialization.FrontmatterDocument, taskID *valueobject.TaskID) (*entity.Task, error) {
	shortID := doc.GetString("id")
	if shortID != "" && shortID != taskID.ShortID() {
		return nil, fmt.Errorf("task ID mismatch: metadata has %s but folder indicates %s", shortID, taskID.ShortID())
	}

	title := doc.GetString("title")
	if title == "" {
		return nil, fmt.Errorf("missing task title")
	}

	priority, err := valueobject.ParsePriority(doc.GetString("priority"))
	if err != nil {
		return nil, fmt.Errorf("invalid priority: %w", err)
	}
	if !priority.IsSet() {
		priority = valueobject.PriorityMedium
	}

	status, err := valueobject.ParseStatus(doc.GetString("status"))
	if err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}
	if !status.IsSet() {
		status = valueobject.StatusTodo
	}

	revenue := doc.GetFloat("revenue")
	timeTaken := doc.GetFloat("time_taken")
	if timeTaken <= 0 {
		timeTaken = 1
	}

	task, err := entity.NewTask(taskID, title, revenue, timeTaken, priority, status)
	if err != nil {
		return nil, err
	}

	task.UpdateNotes(doc.Content)

	if created := doc.GetTime("created"); created != nil {
		task.SetCreatedAt(*created)
	}
	if completed := doc.GetTime("completed"); completed != nil {
		task.SetCompletedDate(*completed)
	}
	// Applied last so UpdateNotes above does not overwrite it
	if modified := doc.GetTime("modified"); modified != nil {
		task.SetModifiedAt(*modified)
	}

	return task, nil
}
