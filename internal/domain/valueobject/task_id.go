package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const taskIDPrefix = "TASK"

var taskIDRegex = regexp.MustCompile(`^([A-Za-z]+)-(\d+)(?:-(.+))?$`)

// TaskID identifies a task. The short form is PREFIX-NUMBER; the full form
// appends a slug derived from the title and doubles as the storage folder name.
type TaskID struct {
	prefix string
	number int
	slug   string
}

// NewTaskID creates a TaskID from a sequence number and title slug
func NewTaskID(number int, slug string) (*TaskID, error) {
	if number <= 0 {
		return nil, fmt.Errorf("task number must be positive, got %d", number)
	}
	return &TaskID{
		prefix: taskIDPrefix,
		number: number,
		slug:   slug,
	}, nil
}

// ParseTaskID parses a short (TASK-7) or full (TASK-7-fix-login) task ID
func ParseTaskID(s string) (*TaskID, error) {
	matches := taskIDRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return nil, fmt.Errorf("invalid task ID format %q", s)
	}

	number, err := strconv.Atoi(matches[2])
	if err != nil || number <= 0 {
		return nil, fmt.Errorf("invalid task number in %q", s)
	}

	return &TaskID{
		prefix: strings.ToUpper(matches[1]),
		number: number,
		slug:   matches[3],
	}, nil
}

// ShortID returns the PREFIX-NUMBER form
func (id *TaskID) ShortID() string {
	return fmt.Sprintf("%s-%d", id.prefix, id.number)
}

// String returns the full form including the slug when present
func (id *TaskID) String() string {
	if id.slug == "" {
		return id.ShortID()
	}
	return fmt.Sprintf("%s-%d-%s", id.prefix, id.number, id.slug)
}

// Number returns the sequence number
func (id *TaskID) Number() int {
	return id.number
}

// Equals compares two task IDs by their short form
func (id *TaskID) Equals(other *TaskID) bool {
	if other == nil {
		return false
	}
	return id.prefix == other.prefix && id.number == other.number
}
