package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// TaskError reports a task service error and returns it with the matching exit code
func TaskError(f *OutputFormatter, err error, taskID int64) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %d not found", taskID),
			"Use 'kanbanx task list' to see available tasks")
	case errors.Is(err, taskservice.ErrEmptyTitle):
		return f.Fail(ExitValidation, "INVALID_TITLE", err.Error(),
			"Provide a non-empty --title")
	default:
		return f.Fail(ExitError, "TASK_ERROR", err.Error(), "")
	}
}

// ParseTaskID parses a positive task ID from a positional argument
func ParseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("task ID must be a positive integer, got %q", arg)
	}
	return id, nil
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", NewExitError(ExitDataErr, fmt.Errorf("failed to read description from stdin: %w", err))
	}
	return string(data), nil
}
