package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, or any case where a task ID doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin, corrupted data, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, empty statuses,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// Commands return it instead of calling os.Exit so main decides when to exit.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an exit code
func NewExitError(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// usageError builds an ExitUsage error
func usageError(format string, args ...any) error {
	return NewExitError(ExitUsage, fmt.Errorf(format, args...))
}
