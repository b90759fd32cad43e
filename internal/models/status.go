package models

// Status is the free-form status string stored with a task.
// Any value is accepted by the store; only the canonical three appear on the board.
type Status string

// Canonical statuses
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// DefaultStatus is used when a task is created without a status
const DefaultStatus = StatusTodo

// DefaultTaskPosition is the position given to a task created without one
const DefaultTaskPosition = 0

// BoardColumn is the closed set of columns a status can project onto
type BoardColumn int

const (
	ColumnUnknown BoardColumn = iota
	ColumnTodo
	ColumnInProgress
	ColumnDone
)

// Column maps a stored status onto its board column.
// Anything other than the canonical statuses maps to ColumnUnknown.
func (s Status) Column() BoardColumn {
	switch s {
	case StatusTodo:
		return ColumnTodo
	case StatusInProgress:
		return ColumnInProgress
	case StatusDone:
		return ColumnDone
	default:
		return ColumnUnknown
	}
}

// IsCanonical reports whether the status shows up on the board
func (s Status) IsCanonical() bool {
	return s.Column() != ColumnUnknown
}

// String returns the board key for the column
func (c BoardColumn) String() string {
	switch c {
	case ColumnTodo:
		return string(StatusTodo)
	case ColumnInProgress:
		return string(StatusInProgress)
	case ColumnDone:
		return string(StatusDone)
	default:
		return "unknown"
	}
}

// BoardColumns lists the board columns in display order
var BoardColumns = []BoardColumn{ColumnTodo, ColumnInProgress, ColumnDone}
