package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
