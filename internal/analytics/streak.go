package analytics

import (
	"sort"
	"time"

	"alcyxob/challenge75/internal/domain"
)

// StreakState summarises a user's run of active days. CurrentStreak can exceed
// LongestStreak: the current walk tolerates one unlogged day per step, the
// longest run does not.
type StreakState struct {
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	LastActiveDate *time.Time `json:"lastActiveDate"` // most recent log date, whatever its score
}

// ComputeStreak evaluates the full log history as of today. Input order does
// not matter.
//
// The longest streak is the longest run of active days whose dates are exactly
// one day apart. The current streak walks back from the newest log with a
// checkpoint that starts at today: a log is accepted when it falls on the
// checkpoint or the day before it and is active, and the checkpoint then moves
// to the day before that log. A stale newest log (two or more days before
// today) or an inactive log ends the walk.
func ComputeStreak(logs []domain.DailyLog, today time.Time) StreakState {
	if len(logs) == 0 {
		return StreakState{}
	}
	sorted := sortedByDate(logs)

	longest, run := 0, 0
	var prev time.Time
	havePrev := false
	for _, l := range sorted {
		if !IsActive(l) {
			run = 0
			havePrev = false
			continue
		}
		if havePrev && DaysBetween(prev, l.Date) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = l.Date
		havePrev = true
	}

	current := 0
	checkpoint := today
	for i := len(sorted) - 1; i >= 0; i-- {
		l := sorted[i]
		gap := DaysBetween(l.Date, checkpoint)
		if gap != 0 && gap != 1 {
			break
		}
		if !IsActive(l) {
			break
		}
		current++
		checkpoint = l.Date.AddDate(0, 0, -1)
	}

	last := sorted[len(sorted)-1].Date
	return StreakState{
		CurrentStreak:  current,
		LongestStreak:  longest,
		LastActiveDate: &last,
	}
}

// sortedByDate returns pointers into logs ordered by ascending date.
func sortedByDate(logs []domain.DailyLog) []*domain.DailyLog {
	out := make([]*domain.DailyLog, len(logs))
	for i := range logs {
		out[i] = &logs[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
