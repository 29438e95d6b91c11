package valueobject

import (
	"fmt"
	"strings"
)

// Priority represents the urgency level of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = ""
)

// ParsePriority converts a string to a Priority
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "":
		return PriorityNone, nil
	default:
		return PriorityNone, fmt.Errorf("invalid priority %q", s)
	}
}

// IsValid checks if the priority is a known value
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// IsSet reports whether a priority has been chosen
func (p Priority) IsSet() bool {
	return p != PriorityNone
}

// String returns the storage representation
func (p Priority) String() string {
	return string(p)
}

// Display returns the human-readable representation
func (p Priority) Display() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "None"
	}
}

// AllPriorities returns the selectable priorities in display order
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}
