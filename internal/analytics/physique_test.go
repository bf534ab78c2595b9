package analytics

import (
	"testing"
	"time"

	"alcyxob/challenge75/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weighIn(date string, weight float64, week int) domain.PhysiqueLog {
	return domain.PhysiqueLog{Date: day(date), Weight: weight, WeekNumber: week}
}

func ptr(f float64) *float64 { return &f }

func TestPhysiqueProgressEmpty(t *testing.T) {
	pp := ComputePhysiqueProgress(nil, ptr(70))
	assert.Nil(t, pp.StartWeight)
	assert.Nil(t, pp.CurrentWeight)
	assert.Equal(t, 70.0, *pp.TargetWeight)
	assert.Equal(t, 0.0, pp.TotalChange)
	assert.Empty(t, pp.WeeklyAverage)
	assert.Equal(t, 0, pp.ProgressPercentage)
}

func TestPhysiqueProgress(t *testing.T) {
	logs := []domain.PhysiqueLog{
		weighIn("2024-01-09", 79.0, 2),
		weighIn("2024-01-01", 80.0, 1),
		weighIn("2024-01-04", 79.5, 1),
		weighIn("2024-01-15", 78.2, 3),
	}
	pp := ComputePhysiqueProgress(logs, ptr(75))
	require.NotNil(t, pp.StartWeight)
	assert.Equal(t, 80.0, *pp.StartWeight)
	assert.Equal(t, 78.2, *pp.CurrentWeight)
	assert.Equal(t, -1.8, pp.TotalChange)
	assert.Equal(t, []WeeklyAverage{{1, 79.8}, {2, 79.0}, {3, 78.2}}, pp.WeeklyAverage)
	assert.Equal(t, 36, pp.ProgressPercentage)
}

func TestPhysiqueProgressCapsAt100AndIgnoresMissingTarget(t *testing.T) {
	logs := []domain.PhysiqueLog{weighIn("2024-01-01", 80, 1), weighIn("2024-02-01", 70, 5)}
	assert.Equal(t, 100, ComputePhysiqueProgress(logs, ptr(75)).ProgressPercentage)
	assert.Equal(t, 0, ComputePhysiqueProgress(logs, nil).ProgressPercentage)
	assert.Equal(t, 0, ComputePhysiqueProgress(logs, ptr(80)).ProgressPercentage)
}

func TestWeightProgress(t *testing.T) {
	one := []domain.PhysiqueLog{weighIn("2024-01-01", 80, 1)}
	wp := ComputeWeightProgress(one, nil)
	assert.Equal(t, 80.0, *wp.Start)
	assert.Equal(t, 80.0, *wp.Current)
	assert.Equal(t, 0.0, wp.Change)

	two := append(one, weighIn("2024-01-08", 78.75, 2))
	assert.Equal(t, -1.2, ComputeWeightProgress(two, nil).Change)

	empty := ComputeWeightProgress(nil, ptr(70))
	assert.Nil(t, empty.Start)
	assert.Equal(t, 70.0, *empty.Target)
}

func TestWeightSeries(t *testing.T) {
	logs := []domain.PhysiqueLog{weighIn("2024-01-08", 79, 2), weighIn("2024-01-01", 80, 1)}
	series := WeightSeries(logs, ptr(75))
	require.Len(t, series, 2)
	assert.Equal(t, 80.0, series[0].Weight)
	assert.Equal(t, 75.0, *series[1].Target)
}

func TestBuildDashboard(t *testing.T) {
	user := &domain.User{Name: "asha", StartDate: day("2024-01-01"), TargetWeight: ptr(75)}
	logs := sampleLogs()
	physique := []domain.PhysiqueLog{weighIn("2024-01-01", 80, 1)}
	today := time.Date(2024, 1, 3, 18, 30, 0, 0, time.UTC)

	d := BuildDashboard(user, logs, physique, today)
	assert.Equal(t, 3, d.User.CurrentDay)
	assert.Equal(t, 72, d.User.DaysRemaining)
	assert.Equal(t, 15, d.Totals.TotalProblems)
	assert.Equal(t, 53, d.WeeklyCompletion)
	assert.Equal(t, 33, d.DietCompliance)
	assert.Equal(t, 67, d.GymCompliance)
	assert.Equal(t, 80.0, *d.WeightProgress.Start)
	assert.Equal(t, 0, d.Streak.CurrentStreak)
	assert.Equal(t, 2, d.Streak.LongestStreak)

	empty := BuildDashboard(user, nil, nil, today)
	assert.Equal(t, 0, empty.DietCompliance)
	assert.Equal(t, 0, empty.GymCompliance)
	assert.Equal(t, 0, empty.WeeklyCompletion)
}
