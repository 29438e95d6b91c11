package entity

import (
	"math"
	"time"

	"taskdeck/internal/domain/valueobject"
)

// Task represents a revenue-bearing unit of tracked work
type Task struct {
	id            *valueobject.TaskID
	title         string
	revenue       float64
	timeTaken     float64
	priority      valueobject.Priority
	status        valueobject.Status
	notes         string
	createdAt     time.Time
	modifiedAt    time.Time
	completedDate *time.Time
}

// NewTask creates a new Task entity
func NewTask(
	id *valueobject.TaskID,
	title string,
	revenue float64,
	timeTaken float64,
	priority valueobject.Priority,
	status valueobject.Status,
) (*Task, error) {
	if id == nil {
		return nil, ErrInvalidTaskID
	}
	if title == "" {
		return nil, ErrEmptyTaskTitle
	}
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return nil, ErrNonFiniteRevenue
	}
	if revenue < 0 {
		return nil, ErrNegativeRevenue
	}
	if math.IsNaN(timeTaken) || math.IsInf(timeTaken, 0) || timeTaken <= 0 {
		return nil, ErrInvalidTimeTaken
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	t := &Task{
		id:         id,
		title:      title,
		revenue:    revenue,
		timeTaken:  timeTaken,
		priority:   priority,
		status:     status,
		createdAt:  now,
		modifiedAt: now,
	}

	if status == valueobject.StatusDone {
		t.completedDate = &now
	}

	return t, nil
}

// ID returns the task ID
func (t *Task) ID() *valueobject.TaskID {
	return t.id
}

// Title returns the task title
func (t *Task) Title() string {
	return t.title
}

// Revenue returns the revenue attributed to the task
func (t *Task) Revenue() float64 {
	return t.revenue
}

// TimeTaken returns the hours spent on the task
func (t *Task) TimeTaken() float64 {
	return t.timeTaken
}

// Priority returns the task priority
func (t *Task) Priority() valueobject.Priority {
	return t.priority
}

// Status returns the task status
func (t *Task) Status() valueobject.Status {
	return t.status
}

// Notes returns the free-form notes
func (t *Task) Notes() string {
	return t.notes
}

// CreatedAt returns when the task was created
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// ModifiedAt returns when the task was last modified
func (t *Task) ModifiedAt() time.Time {
	return t.modifiedAt
}

// CompletedDate returns when the task was completed
func (t *Task) CompletedDate() *time.Time {
	if t.completedDate == nil {
		return nil
	}
	completedCopy := *t.completedDate
	return &completedCopy
}

// UpdateTitle updates the task title
func (t *Task) UpdateTitle(title string) error {
	if title == "" {
		return ErrEmptyTaskTitle
	}
	t.title = title
	t.modifiedAt = time.Now()
	return nil
}

// UpdateRevenue updates the revenue attributed to the task
func (t *Task) UpdateRevenue(revenue float64) error {
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return ErrNonFiniteRevenue
	}
	if revenue < 0 {
		return ErrNegativeRevenue
	}
	t.revenue = revenue
	t.modifiedAt = time.Now()
	return nil
}

// UpdateTimeTaken updates the hours spent on the task
func (t *Task) UpdateTimeTaken(timeTaken float64) error {
	if math.IsNaN(timeTaken) || math.IsInf(timeTaken, 0) || timeTaken <= 0 {
		return ErrInvalidTimeTaken
	}
	t.timeTaken = timeTaken
	t.modifiedAt = time.Now()
	return nil
}

// UpdatePriority updates the task priority
func (t *Task) UpdatePriority(priority valueobject.Priority) error {
	if !priority.IsValid() {
		return ErrInvalidPriority
	}
	t.priority = priority
	t.modifiedAt = time.Now()
	return nil
}

// UpdateStatus updates the task status. The completed date is stamped when
// the status becomes done (keeping an earlier stamp if one exists) and
// cleared whenever the task leaves done, so it is set iff the task is done.
func (t *Task) UpdateStatus(status valueobject.Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	t.status = status
	t.modifiedAt = time.Now()

	if status == valueobject.StatusDone {
		if t.completedDate == nil {
			now := time.Now()
			t.completedDate = &now
		}
	} else {
		t.completedDate = nil
	}

	return nil
}

// UpdateNotes replaces the free-form notes
func (t *Task) UpdateNotes(notes string) {
	t.notes = notes
	t.modifiedAt = time.Now()
}

// SetCreatedAt overrides the creation timestamp. Used when rehydrating a
// task from storage so edits carry the original timestamp forward.
func (t *Task) SetCreatedAt(createdAt time.Time) {
	if !createdAt.IsZero() {
		t.createdAt = createdAt
	}
}

// SetModifiedAt overrides the modification timestamp. Used when
// rehydrating a task from storage, after every other field is applied,
// so loading a task does not count as modifying it.
func (t *Task) SetModifiedAt(modifiedAt time.Time) {
	if !modifiedAt.IsZero() {
		t.modifiedAt = modifiedAt
	}
}

// SetCompletedDate overrides the completion timestamp. Only honored while
// the task is done; the set-iff-done invariant holds either way.
func (t *Task) SetCompletedDate(completed time.Time) {
	if t.status == valueobject.StatusDone && !completed.IsZero() {
		t.completedDate = &completed
	}
}

// MarkAsCompleted marks the task as completed
func (t *Task) MarkAsCompleted() error {
	return t.UpdateStatus(valueobject.StatusDone)
}

// IsCompleted reports whether the task is done
func (t *Task) IsCompleted() bool {
	return t.status == valueobject.StatusDone
}

// HourlyRate returns revenue per hour spent
func (t *Task) HourlyRate() float64 {
	if t.timeTaken <= 0 {
		return 0
	}
	return t.revenue / t.timeTaken
}
