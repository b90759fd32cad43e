package database

import "errors"

// ErrNotFound is returned when a statement targets an id with no row
var ErrNotFound = errors.New("record not found")
