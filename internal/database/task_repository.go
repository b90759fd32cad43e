package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanbanx/internal/models"
)

const taskColumns = `id, title, description, status, assignee, position, created_at, updated_at`

// TaskRepo handles all task-related database operations.
// Every method is a single statement in auto-commit mode.
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo creates a TaskRepo over db
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task                 models.Task
		description          sql.NullString
		assignee             sql.NullString
		position             sql.NullInt64
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&task.ID, &task.Title, &description, &task.Status,
		&assignee, &position, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	task.Description = nullStringToPtr(description)
	task.Assignee = nullStringToPtr(assignee)
	task.Position = int(position.Int64)

	var err error
	if task.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAllTasks returns every task ordered by status, then position
func (r *TaskRepo) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks
		 ORDER BY status, position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTaskByID returns a single task, or ErrNotFound
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// CreateTask inserts a task. The ID and timestamps on the input are ignored;
// the returned task carries the store-assigned values.
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := nowFunc()
	stamp := formatTimestamp(now)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, assignee, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, ptrToNullString(task.Description), string(task.Status),
		ptrToNullString(task.Assignee), task.Position, stamp, stamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *task
	created.ID = id
	created.CreatedAt = now.UTC()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

// UpdateTask replaces every mutable field of the task with the given ID and
// returns the row as stored. Returns ErrNotFound when no row matches.
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, status = ?, assignee = ?, position = ?, updated_at = ?
		 WHERE id = ?`,
		task.Title, ptrToNullString(task.Description), string(task.Status),
		ptrToNullString(task.Assignee), task.Position, formatTimestamp(nowFunc()), task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	if err := checkAffected(result); err != nil {
		return nil, err
	}

	return r.GetTaskByID(ctx, task.ID)
}

// DeleteTask removes a task permanently. Returns ErrNotFound when no row matches.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return checkAffected(result)
}

// MoveTask sets status and position only. Other tasks in the source or
// destination column keep their positions.
func (r *TaskRepo) MoveTask(ctx context.Context, id int64, status models.Status, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET status = ?, position = ?, updated_at = ?
		 WHERE id = ?`,
		string(status), position, formatTimestamp(nowFunc()), id,
	)
	if err != nil {
		return fmt.Errorf("failed to move task %d: %w", id, err)
	}
	return checkAffected(result)
}
