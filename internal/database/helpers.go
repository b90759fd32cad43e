package database

import (
	"database/sql"
	"fmt"
	"time"
)

// TimestampLayout is how created_at and updated_at are stored (ISO-8601, UTC)
const TimestampLayout = time.RFC3339Nano

// nowFunc is swapped in tests that need a fixed clock
var nowFunc = func() time.Time {
	return time.Now().UTC()
}

// formatTimestamp renders t in the stored layout
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// parseTimestamp reads a stored timestamp back
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

// ptrToNullString converts *string to sql.NullString
func ptrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// checkAffected maps a zero row count to ErrNotFound
func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
