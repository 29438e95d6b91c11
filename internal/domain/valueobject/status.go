package valueobject

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a task
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusNone       Status = ""
)

// ParseStatus converts a string to a Status
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	switch normalized {
	case "todo", "to-do":
		return StatusTodo, nil
	case "in-progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "done", "completed":
		return StatusDone, nil
	case "":
		return StatusNone, nil
	default:
		return StatusNone, fmt.Errorf("invalid status %q", s)
	}
}

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusNone:
		return true
	}
	return false
}

// IsSet reports whether a status has been chosen
func (s Status) IsSet() bool {
	return s != StatusNone
}

// String returns the storage representation
func (s Status) String() string {
	return string(s)
}

// Display returns the human-readable representation
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "None"
	}
}

// AllStatuses returns the selectable statuses in workflow order
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}
