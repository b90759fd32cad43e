package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// Response messages
const (
	msgTaskNotFound  = "Task not found"
	msgTaskDeleted   = "Task deleted successfully"
	msgTaskMoved     = "Task moved successfully"
	msgInternalError = "Internal Server Error"
)

// messageResponse is the body of every error and acknowledgment
type messageResponse struct {
	Message string `json:"message"`
}

// validationError reports a request the handlers refuse before reaching the service
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func newValidationError(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// statusFor maps an error returned by a handler to the response status and message
func statusFor(err error) (int, string) {
	var validation *validationError
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return http.StatusNotFound, msgTaskNotFound
	case errors.Is(err, taskservice.ErrEmptyTitle):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity, validation.msg
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, msgInternalError
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// handleError is the echo HTTPErrorHandler.
// Causes of 5xx responses are logged and never sent to the client.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, messageResponse{Message: msg})
	}
	if writeErr != nil {
		s.logger.Error("failed to write error response", "error", writeErr)
	}
}
