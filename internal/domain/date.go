package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar days ("2024-01-31").
const DateLayout = "2006-01-02"

// Day truncates t to its calendar day and pins it to UTC midnight.
// All persisted dates go through Day so that (user, date) lookups match exactly.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts either a bare calendar day or an RFC3339 timestamp and
// returns the calendar day it names.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "is required"}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", s)}
	}
	return Day(t), nil
}

// FormatDay renders a calendar day in DateLayout.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
