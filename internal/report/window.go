package report

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidRange is returned when a window bound is missing, unparseable,
	// or the start falls after the end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrStoreUnavailable wraps failures fetching the records to aggregate.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

const dayLayout = "2006-01-02"

// Window is an inclusive date range [Start, End], both truncated to UTC days.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates and normalizes a window.
func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, ErrInvalidRange
	}
	w := Window{Start: Day(start), End: Day(end)}
	if w.Start.After(w.End) {
		return Window{}, ErrInvalidRange
	}
	return w, nil
}

// ParseWindow parses both bounds with ParseDate and validates the result.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the UTC day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidRange
	}
	if t, err := time.Parse(dayLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}
	return Day(t), nil
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls on a day inside the window.
func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// StartString returns the start bound as YYYY-MM-DD.
func (w Window) StartString() string {
	return w.Start.Format(dayLayout)
}

// EndString returns the end bound as YYYY-MM-DD.
func (w Window) EndString() string {
	return w.End.Format(dayLayout)
}
