package models

import (
	"encoding/json"
	"testing"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestStatus_Column(t *testing.T) {
	tests := []struct {
		status Status
		want   BoardColumn
	}{
		{StatusTodo, ColumnTodo},
		{StatusInProgress, ColumnInProgress},
		{StatusDone, ColumnDone},
		{"archived", ColumnUnknown},
		{"", ColumnUnknown},
		{"Todo", ColumnUnknown},
	}

	for _, tt := range tests {
		if got := tt.status.Column(); got != tt.want {
			t.Errorf("Status(%q).Column() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBoardColumn_String(t *testing.T) {
	for _, c := range BoardColumns {
		if Status(c.String()).Column() != c {
			t.Errorf("column %v does not round-trip through its key %q", c, c.String())
		}
	}
	if ColumnUnknown.String() != "unknown" {
		t.Errorf("ColumnUnknown.String() = %q, want unknown", ColumnUnknown.String())
	}
}

// ============================================================================
// Board Tests
// ============================================================================

func TestBuildBoard_DropsUnknownStatus(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Title: "a", Status: StatusTodo},
		{ID: 2, Title: "b", Status: "archived"},
		{ID: 3, Title: "c", Status: StatusDone},
		{ID: 4, Title: "d", Status: StatusTodo},
	}

	board := BuildBoard(tasks)

	if board.Len() != 3 {
		t.Fatalf("Expected 3 tasks on board, got %d", board.Len())
	}
	if len(board.Todo) != 2 || board.Todo[0].ID != 1 || board.Todo[1].ID != 4 {
		t.Errorf("Todo column has wrong tasks or order: %+v", board.Todo)
	}
	if len(board.InProgress) != 0 {
		t.Errorf("Expected empty in_progress column, got %d tasks", len(board.InProgress))
	}
	if len(board.Done) != 1 || board.Done[0].ID != 3 {
		t.Errorf("Done column has wrong tasks: %+v", board.Done)
	}
}

func TestBoard_EmptyEncodesArrays(t *testing.T) {
	data, err := json.Marshal(NewBoard())
	if err != nil {
		t.Fatalf("Failed to marshal board: %v", err)
	}

	want := `{"todo":[],"in_progress":[],"done":[]}`
	if string(data) != want {
		t.Errorf("Empty board JSON = %s, want %s", data, want)
	}
}

func TestTask_OptionalFieldsEncodeNull(t *testing.T) {
	data, err := json.Marshal(&Task{ID: 7, Title: "x", Status: StatusTodo})
	if err != nil {
		t.Fatalf("Failed to marshal task: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal task: %v", err)
	}
	if v, ok := decoded["description"]; !ok || v != nil {
		t.Errorf("Expected description to be null, got %v", v)
	}
	if v, ok := decoded["assignee"]; !ok || v != nil {
		t.Errorf("Expected assignee to be null, got %v", v)
	}
}
