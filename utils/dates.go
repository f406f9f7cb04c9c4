// utils/dates.go
package utils

import "time"

const (
	DateForm     = "2006-01-02"
	DateTimeForm = "2006-01-02T15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD form value. ok is false for empty or
// malformed input so callers can skip the filter silently.
func ParseDate(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateForm, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses the datetime-local form value used by the
// appointment form.
func ParseDateTime(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateTimeForm, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
