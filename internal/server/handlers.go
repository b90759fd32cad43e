package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/kanbanx/internal/models"
	taskservice "github.com/thenoetrevino/kanbanx/internal/services/task"
)

// taskPayload is the body of POST and PUT /api/tasks.
// Unknown fields such as id and timestamps are ignored.
type taskPayload struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
	Assignee    *string        `json:"assignee"`
	Position    *wholeNumber   `json:"position"`
}

// moveRequest is the body of PATCH /api/tasks/:id/move
type moveRequest struct {
	Status   *models.Status `json:"status"`
	Position *wholeNumber   `json:"position"`
}

// wholeNumber is an integer field that also accepts floats with no
// fractional part, so 2.0 decodes as 2 and 2.5 is rejected
type wholeNumber int

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("position %s is not a whole number", data)
	}
	*n = wholeNumber(f)
	return nil
}

func bindTaskPayload(c echo.Context) (*taskPayload, error) {
	var p taskPayload
	if err := c.Bind(&p); err != nil {
		return nil, newValidationError("invalid request body")
	}
	if p.Title == nil {
		return nil, newValidationError("title is required")
	}
	return &p, nil
}

func (p *taskPayload) position() int {
	if p.Position == nil {
		return models.DefaultTaskPosition
	}
	return int(*p.Position)
}

func parseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, newValidationError("invalid task ID %q", c.Param("id"))
	}
	return id, nil
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.tasks.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := s.tasks.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) createTask(c echo.Context) error {
	p, err := bindTaskPayload(c)
	if err != nil {
		return err
	}

	task, err := s.tasks.CreateTask(c.Request().Context(), taskservice.CreateTaskRequest{
		Title:       *p.Title,
		Description: p.Description,
		Status:      p.Status,
		Assignee:    p.Assignee,
		Position:    p.position(),
	})
	if err != nil {
		return err
	}

	s.metrics.IncTaskMutations()
	return c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}
	p, err := bindTaskPayload(c)
	if err != nil {
		return err
	}

	task, err := s.tasks.UpdateTask(c.Request().Context(), taskservice.UpdateTaskRequest{
		TaskID:      id,
		Title:       *p.Title,
		Description: p.Description,
		Status:      p.Status,
		Assignee:    p.Assignee,
		Position:    p.position(),
	})
	if err != nil {
		return err
	}

	s.metrics.IncTaskMutations()
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := s.tasks.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	s.metrics.IncTaskMutations()
	return c.JSON(http.StatusOK, messageResponse{Message: msgTaskDeleted})
}

func (s *Server) moveTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req moveRequest
	if err := c.Bind(&req); err != nil {
		return newValidationError("invalid request body")
	}
	if req.Status == nil || req.Position == nil {
		return newValidationError("status and position are required")
	}

	err = s.tasks.MoveTask(c.Request().Context(), taskservice.MoveTaskRequest{
		TaskID:   id,
		Status:   *req.Status,
		Position: int(*req.Position),
	})
	if err != nil {
		return err
	}

	s.metrics.IncTaskMutations()
	return c.JSON(http.StatusOK, messageResponse{Message: msgTaskMoved})
}

func (s *Server) getBoard(c echo.Context) error {
	board, err := s.tasks.GetBoard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.GetSnapshot())
}
