package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// JSON errors go to stdout so agents can parse them; human errors go to stderr
// and are suppressed in quiet mode.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	if f.Quiet {
		return nil
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports an error in the current output mode and returns it with an exit code
func (f *OutputFormatter) Fail(exitCode int, code, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return NewExitError(exitCode, errors.New(message))
}
