package util

import (
	"database/sql"
	"time"
)

// StringToNullString converts a string to sql.NullString, treating "" as NULL.
func StringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// TimeToNullTime converts a time to sql.NullTime, treating the zero time as
// NULL.
func TimeToNullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
