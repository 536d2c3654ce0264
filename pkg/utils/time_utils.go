package utils

import "time"

// FormatTimestamp renders a timestamp for API payloads. Zero times
// render as empty so callers can omit them.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
