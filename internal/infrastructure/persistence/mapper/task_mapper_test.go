package mapper

import (
	"testing"
	"time"

	"taskdeck/internal/domain/entity"
	"taskdeck/internal/domain/valueobject"
	"taskdeck/internal/infrastructure/serialization"
)

func testTaskID(t *testing.T, number int, slugPart string) *valueobject.TaskID {
	t.Helper()
	id, err := valueobject.NewTaskID(number, slugPart)
	if err != nil {
		t.Fatalf("NewTaskID: %v", err)
	}
	return id
}

func TestTaskToStorage(t *testing.T) {
	task, err := entity.NewTask(testTaskID(t, 7, "fix-login"), "Fix login", 300, 1.5,
		valueobject.PriorityHigh, valueobject.StatusDone)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	task.UpdateNotes("reproduced on staging")

	frontmatter, content, err := TaskToStorage(task)
	if err != nil {
		t.Fatalf("TaskToStorage: %v", err)
	}

	if frontmatter["id"] != "TASK-7" {
		t.Errorf("id = %v, want the short form TASK-7", frontmatter["id"])
	}
	if frontmatter["title"] != "Fix login" {
		t.Errorf("title = %v", frontmatter["title"])
	}
	if frontmatter["revenue"] != 300.0 || frontmatter["time_taken"] != 1.5 {
		t.Errorf("numeric fields = %v, %v", frontmatter["revenue"], frontmatter["time_taken"])
	}
	if frontmatter["priority"] != "high" || frontmatter["status"] != "done" {
		t.Errorf("enums = %v, %v", frontmatter["priority"], frontmatter["status"])
	}
	if _, ok := frontmatter["completed"]; !ok {
		t.Error("expected a completed stamp for a done task")
	}
	if content != "reproduced on staging" {
		t.Errorf("content = %q", content)
	}
}

func TestTaskToStorageOmitsCompletedWhenNotDone(t *testing.T) {
	task, err := entity.NewTask(testTaskID(t, 8, "open-task"), "Open task", 0, 1,
		valueobject.PriorityLow, valueobject.StatusTodo)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	frontmatter, _, err := TaskToStorage(task)
	if err != nil {
		t.Fatalf("TaskToStorage: %v", err)
	}
	if _, ok := frontmatter["completed"]; ok {
		t.Error("expected no completed stamp for a task that is not done")
	}
}

func TestTaskFromStorage(t *testing.T) {
	doc := &serialization.FrontmatterDocument{
		Frontmatter: map[string]interface{}{
			"id":         "TASK-7",
			"title":      "Fix login",
			"revenue":    300.0,
			"time_taken": 1.5,
			"priority":   "high",
			"status":     "done",
			"created":    "2026-01-10T09:00:00Z",
			"modified":   "2026-01-12T15:30:00Z",
			"completed":  "2026-01-12T15:30:00Z",
		},
		Content: "reproduced on staging",
	}

	task, err := TaskFromStorage(doc, testTaskID(t, 7, "fix-login"))
	if err != nil {
		t.Fatalf("TaskFromStorage: %v", err)
	}

	if task.Title() != "Fix login" || task.Revenue() != 300 || task.TimeTaken() != 1.5 {
		t.Error("unexpected scalar fields after load")
	}
	if task.Priority() != valueobject.PriorityHigh || task.Status() != valueobject.StatusDone {
		t.Error("unexpected enum fields after load")
	}
	if task.Notes() != "reproduced on staging" {
		t.Errorf("Notes = %q", task.Notes())
	}

	wantCreated := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	if !task.CreatedAt().Equal(wantCreated) {
		t.Errorf("CreatedAt = %v, want %v", task.CreatedAt(), wantCreated)
	}
	wantCompleted := time.Date(2026, 1, 12, 15, 30, 0, 0, time.UTC)
	if got := task.CompletedDate(); got == nil || !got.Equal(wantCompleted) {
		t.Errorf("CompletedDate = %v, want %v", got, wantCompleted)
	}
}

func TestTaskFromStorageKeepsModifiedAt(t *testing.T) {
	doc := &serialization.FrontmatterDocument{
		Frontmatter: map[string]interface{}{
			"title":    "Untouched task",
			"modified": "2026-01-12T15:30:00Z",
		},
		Content: "some notes",
	}

	task, err := TaskFromStorage(doc, testTaskID(t, 5, "untouched-task"))
	if err != nil {
		t.Fatalf("TaskFromStorage: %v", err)
	}

	want := time.Date(2026, 1, 12, 15, 30, 0, 0, time.UTC)
	if !task.ModifiedAt().Equal(want) {
		t.Errorf("ModifiedAt = %v, want stored value %v", task.ModifiedAt(), want)
	}
}

func TestTaskFromStorageDefaults(t *testing.T) {
	doc := &serialization.FrontmatterDocument{
		Frontmatter: map[string]interface{}{
			"title": "Sparse task",
		},
	}

	task, err := TaskFromStorage(doc, testTaskID(t, 2, "sparse-task"))
	if err != nil {
		t.Fatalf("TaskFromStorage: %v", err)
	}

	if task.Priority() != valueobject.PriorityMedium {
		t.Errorf("expected default priority medium, got %q", task.Priority())
	}
	if task.Status() != valueobject.StatusTodo {
		t.Errorf("expected default status todo, got %q", task.Status())
	}
	if task.TimeTaken() != 1 {
		t.Errorf("expected missing time taken to default to 1, got %v", task.TimeTaken())
	}
}

func TestTaskFromStorageErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  *serialization.FrontmatterDocument
	}{
		{
			"missing title",
			&serialization.FrontmatterDocument{Frontmatter: map[string]interface{}{"id": "TASK-3"}},
		},
		{
			"mismatched id",
			&serialization.FrontmatterDocument{Frontmatter: map[string]interface{}{
				"id":    "TASK-99",
				"title": "Wrong folder",
			}},
		},
		{
			"invalid status",
			&serialization.FrontmatterDocument{Frontmatter: map[string]interface{}{
				"title":  "Bad status",
				"status": "blocked",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TaskFromStorage(tt.doc, testTaskID(t, 3, "some-task")); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTaskFromStorageIgnoresCompletedWhenNotDone(t *testing.T) {
	doc := &serialization.FrontmatterDocument{
		Frontmatter: map[string]interface{}{
			"title":     "Reopened task",
			"status":    "todo",
			"completed": "2026-01-12T15:30:00Z",
		},
	}

	task, err := TaskFromStorage(doc, testTaskID(t, 4, "reopened-task"))
	if err != nil {
		t.Fatalf("TaskFromStorage: %v", err)
	}
	if task.CompletedDate() != nil {
		t.Error("expected a stale completed stamp dropped for a task that is not done")
	}
}
