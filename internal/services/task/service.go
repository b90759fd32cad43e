package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanbanx/internal/database"
	"github.com/thenoetrevino/kanbanx/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int64) (*models.Task, error)
	GetBoard(ctx context.Context) (*models.Board, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	// Board movement
	MoveTask(ctx context.Context, req MoveTaskRequest) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Status nil means DefaultStatus.
type CreateTaskRequest struct {
	Title       string
	Description *string
	Status      *models.Status
	Assignee    *string
	Position    int
}

// UpdateTaskRequest replaces every mutable field of a task.
// It is not a patch: nil Description/Assignee clear the stored value and
// nil Status resets it to DefaultStatus.
type UpdateTaskRequest struct {
	TaskID      int64
	Title       string
	Description *string
	Status      *models.Status
	Assignee    *string
	Position    int
}

// MoveTaskRequest places a task in a column at a position.
// Neither value is validated and no other task is renumbered.
type MoveTaskRequest struct {
	TaskID   int64
	Status   models.Status
	Position int
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListTasks returns every task ordered by status, then position
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, taskID int64) (*models.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, "failed to get task")
	}
	return task, nil
}

// GetBoard projects all tasks onto the three canonical columns.
// Tasks with any other status stay in storage but are left off the board.
func (s *service) GetBoard(ctx context.Context) (*models.Board, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return models.BuildBoard(tasks), nil
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      statusOrDefault(req.Status),
		Assignee:    req.Assignee,
		Position:    req.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces a task's mutable fields and returns the stored result
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateTask(ctx, &models.Task{
		ID:          req.TaskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      statusOrDefault(req.Status),
		Assignee:    req.Assignee,
		Position:    req.Position,
	})
	if err != nil {
		return nil, mapNotFound(err, "failed to update task")
	}

	return task, nil
}

// DeleteTask handles task deletion
func (s *service) DeleteTask(ctx context.Context, taskID int64) error {
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return mapNotFound(err, "failed to delete task")
	}

	return nil
}

// MoveTask changes a task's status and position only
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) error {
	if err := s.repo.MoveTask(ctx, req.TaskID, req.Status, req.Position); err != nil {
		return mapNotFound(err, "failed to move task")
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func statusOrDefault(status *models.Status) models.Status {
	if status == nil {
		return models.DefaultStatus
	}
	return *status
}

// mapNotFound turns the store's ErrNotFound into ErrTaskNotFound and wraps anything else
func mapNotFound(err error, action string) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrTaskNotFound
	}
	return fmt.Errorf("%s: %w", action, err)
}
