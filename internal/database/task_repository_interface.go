package database

import (
	"context"

	"github.com/thenoetrevino/kanbanx/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TaskMover defines the drag-and-drop operation on the board.
type TaskMover interface {
	MoveTask(ctx context.Context, id int64, status models.Status, position int) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	TaskMover
}
