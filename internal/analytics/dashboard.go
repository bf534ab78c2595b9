package analytics

import (
	"time"

	"alcyxob/challenge75/internal/domain"
)

// ChallengeProgress is the user block of the dashboard.
type ChallengeProgress struct {
	Name          string    `json:"name"`
	StartDate     time.Time `json:"startDate"`
	CurrentDay    int       `json:"currentDay"`
	DaysRemaining int       `json:"daysRemaining"`
}

// Dashboard is the overview returned to the client home screen.
type Dashboard struct {
	User             ChallengeProgress `json:"user"`
	Totals           Totals            `json:"totals"`
	WeeklyCompletion int               `json:"weeklyCompletion"`
	DietCompliance   int               `json:"dietCompliance"`
	GymCompliance    int               `json:"gymCompliance"`
	WeightProgress   WeightProgress    `json:"weightProgress"`
	Streak           StreakState       `json:"streak"`
}

// BuildDashboard composes the dashboard for user as of today.
func BuildDashboard(user *domain.User, logs []domain.DailyLog, physique []domain.PhysiqueLog, today time.Time) Dashboard {
	totals := ComputeTotals(logs)
	return Dashboard{
		User: ChallengeProgress{
			Name:          user.Name,
			StartDate:     user.StartDate,
			CurrentDay:    DayNumber(user.StartDate, today),
			DaysRemaining: DaysRemaining(user.StartDate, today),
		},
		Totals:           totals,
		WeeklyCompletion: WeeklyCompletion(logs),
		DietCompliance:   Compliance(totals.CleanDietDays, totals.DaysLogged),
		GymCompliance:    Compliance(totals.GymDays, totals.DaysLogged),
		WeightProgress:   ComputeWeightProgress(physique, user.TargetWeight),
		Streak:           ComputeStreak(logs, today),
	}
}
