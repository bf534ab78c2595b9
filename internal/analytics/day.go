package analytics

import (
	"math"
	"time"
)

const (
	// ChallengeDays is the fixed length of the challenge window.
	ChallengeDays = 75
	// ChallengeWeeks is the number of weeks the window spans (75 days ~ 11 weeks).
	ChallengeWeeks = 11
)

// DaysBetween returns the number of whole calendar days from `from` to `to`.
// Only the calendar date of each value (in its own location) is used, so
// time of day and DST transitions never shift the result.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// DayNumber is the 1-indexed day of date within the challenge that began on
// start, clamped to [1, ChallengeDays]. Dates outside the window are relabelled,
// never rejected.
func DayNumber(start, date time.Time) int {
	return clamp(DaysBetween(start, date)+1, 1, ChallengeDays)
}

// WeekNumber is the 1-indexed challenge week of date, clamped to [1, ChallengeWeeks].
func WeekNumber(start, date time.Time) int {
	offset := DaysBetween(start, date)
	week := 1
	if offset+1 > 0 {
		week = int(math.Ceil(float64(offset+1) / 7))
	}
	return clamp(week, 1, ChallengeWeeks)
}

// DaysRemaining is how many challenge days are left after today.
func DaysRemaining(start, today time.Time) int {
	return max(0, ChallengeDays-DayNumber(start, today))
}

// WeekBounds returns the first and last calendar day of challenge week n.
func WeekBounds(start time.Time, week int) (time.Time, time.Time) {
	y, m, d := start.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7)
	return first, first.AddDate(0, 0, 6)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf,
// which is how the dashboard percentages have always been rounded.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}
