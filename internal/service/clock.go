package service

import (
	"time"

	"alcyxob/challenge75/internal/domain"
)

// Clock resolves "today" in the challenge timezone. The zero value uses
// time.Now and UTC.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock returns a wall clock pinned to loc.
func NewClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Today is the current calendar day as a UTC midnight.
func (c Clock) Today() time.Time {
	return domain.Day(c.now())
}
