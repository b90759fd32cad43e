package models

// Board is the projection of all tasks grouped into the three canonical columns.
// The slices are never nil so they encode as [] rather than null.
type Board struct {
	Todo       []*Task `json:"todo"`
	InProgress []*Task `json:"in_progress"`
	Done       []*Task `json:"done"`
}

// NewBoard returns a board with three empty columns
func NewBoard() *Board {
	return &Board{
		Todo:       []*Task{},
		InProgress: []*Task{},
		Done:       []*Task{},
	}
}

// BuildBoard projects tasks onto a board, keeping their order.
// Tasks with a non-canonical status are dropped.
func BuildBoard(tasks []*Task) *Board {
	board := NewBoard()
	for _, t := range tasks {
		board.Add(t)
	}
	return board
}

// Add appends the task to its column and reports whether it was placed
func (b *Board) Add(t *Task) bool {
	switch t.Status.Column() {
	case ColumnTodo:
		b.Todo = append(b.Todo, t)
	case ColumnInProgress:
		b.InProgress = append(b.InProgress, t)
	case ColumnDone:
		b.Done = append(b.Done, t)
	default:
		return false
	}
	return true
}

// Tasks returns the tasks in the given column
func (b *Board) Tasks(c BoardColumn) []*Task {
	switch c {
	case ColumnTodo:
		return b.Todo
	case ColumnInProgress:
		return b.InProgress
	case ColumnDone:
		return b.Done
	default:
		return nil
	}
}

// Len returns the number of tasks on the board
func (b *Board) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}
