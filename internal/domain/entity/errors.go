package entity

import "errors"

var (
	// Task errors
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidTaskID  = errors.New("invalid task ID format")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrDuplicateTitle = errors.New("a task with this title already exists")

	// Validation errors
	ErrInvalidPriority  = errors.New("invalid priority value")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrNegativeRevenue  = errors.New("revenue cannot be negative")
	ErrNonFiniteRevenue = errors.New("revenue must be a finite number")
	ErrInvalidTimeTaken = errors.New("time taken must be a positive number")
)
