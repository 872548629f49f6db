package repository

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a record lookup matches no row. Consumers
// that resolve weak references treat it as "render a placeholder", not as
// a failure.
var ErrNotFound = errors.New("record not found")

const dateLayout = "2006-01-02"

// parseDate parses a stored date string, returning the zero time for
// empty or malformed values. Dates are user-entered and never trusted.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatDate renders a date for storage, empty string for the zero time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a storage value,
// SQL NULL when nil.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// parseStamp parses a stored RFC3339 timestamp, zero time on failure.
func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// stamp renders a timestamp for storage.
func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
