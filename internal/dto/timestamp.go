package dto

import "time"

// TimestampLayout is ISO-8601 with millisecond precision, matching what the
// store keeps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC, or "" when t is absent so the field is
// omitted from the response.
func FormatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}
