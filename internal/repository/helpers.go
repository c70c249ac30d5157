package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableDate parses a sql.NullString into a time.Time using the
// board's date layout. NULL, empty and malformed values come back zero,
// which the domain reads as "unscheduled".
func parseNullableDate(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// dateToValue converts a date to a value suitable for SQLite storage.
// The zero time is stored as SQL NULL.
func dateToValue(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
