package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces (TaskReader, TaskMover, ...)
// for clearer dependencies.
type DataStore interface {
	TaskRepository
}
