package analytics

import (
	"testing"

	"alcyxob/challenge75/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakEmpty(t *testing.T) {
	s := ComputeStreak(nil, day("2024-01-10"))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 0, s.LongestStreak)
	assert.Nil(t, s.LastActiveDate)
}

func TestStreakSingleActiveToday(t *testing.T) {
	s := ComputeStreak([]domain.DailyLog{logWithScore("2024-01-10", 5)}, day("2024-01-10"))
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestStreakSingleActiveYesterday(t *testing.T) {
	s := ComputeStreak([]domain.DailyLog{logWithScore("2024-01-09", 4)}, day("2024-01-10"))
	assert.Equal(t, 1, s.CurrentStreak, "today not logged yet keeps the streak alive")
}

func TestStreakStale(t *testing.T) {
	s := ComputeStreak([]domain.DailyLog{logWithScore("2024-01-08", 5)}, day("2024-01-10"))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	require.NotNil(t, s.LastActiveDate)
	assert.Equal(t, day("2024-01-08"), *s.LastActiveDate)
}

func TestStreakBrokenByInactiveDay(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-01", 4),
		logWithScore("2024-01-02", 4),
		logWithScore("2024-01-03", 4),
		logWithScore("2024-01-04", 1),
		logWithScore("2024-01-05", 4),
	}
	s := ComputeStreak(logs, day("2024-01-05"))
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 1, s.CurrentStreak)
}

func TestStreakUnorderedInput(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-05", 4),
		logWithScore("2024-01-02", 4),
		logWithScore("2024-01-04", 1),
		logWithScore("2024-01-01", 4),
		logWithScore("2024-01-03", 4),
	}
	s := ComputeStreak(logs, day("2024-01-05"))
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, day("2024-01-05"), *s.LastActiveDate)
	assert.Equal(t, day("2024-01-05"), logs[0].Date, "input is not reordered")
}

func TestStreakGapBreaksLongest(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-01", 3),
		logWithScore("2024-01-02", 3),
		logWithScore("2024-01-05", 3),
		logWithScore("2024-01-06", 3),
		logWithScore("2024-01-07", 3),
	}
	s := ComputeStreak(logs, day("2024-01-08"))
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 3, s.CurrentStreak)
}

func TestStreakCurrentToleratesOneMissingDay(t *testing.T) {
	// The walk accepts a log on the checkpoint or the day before it, so a
	// single unlogged day does not end the current streak.
	logs := []domain.DailyLog{
		logWithScore("2024-01-01", 3),
		logWithScore("2024-01-03", 3),
	}
	s := ComputeStreak(logs, day("2024-01-03"))
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestStreakRunOfActiveDaysEndingYesterday(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-07", 5),
		logWithScore("2024-01-08", 5),
		logWithScore("2024-01-09", 5),
	}
	s := ComputeStreak(logs, day("2024-01-10"))
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
}

func TestStreakInactiveMostRecentLog(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-08", 5),
		logWithScore("2024-01-09", 5),
		logWithScore("2024-01-10", 2),
	}
	s := ComputeStreak(logs, day("2024-01-10"))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
	assert.Equal(t, day("2024-01-10"), *s.LastActiveDate, "last date ignores the score")
}

func TestStreakFutureLogEndsWalk(t *testing.T) {
	logs := []domain.DailyLog{
		logWithScore("2024-01-09", 5),
		logWithScore("2024-01-12", 5),
	}
	s := ComputeStreak(logs, day("2024-01-10"))
	assert.Equal(t, 0, s.CurrentStreak)
}
