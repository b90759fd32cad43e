package models

import "time"

// Task represents a single card on the kanban board
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	Assignee    *string   `json:"assignee"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DescriptionOrEmpty returns the description, or "" when none is set
func (t *Task) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// AssigneeOrEmpty returns the assignee, or "" when none is set
func (t *Task) AssigneeOrEmpty() string {
	if t.Assignee == nil {
		return ""
	}
	return *t.Assignee
}
