package analytics

import (
	"time"

	"alcyxob/challenge75/internal/domain"
)

// Totals are the dashboard counters over a set of daily logs.
type Totals struct {
	LeetCodeProblems     int `json:"leetcodeProblems"`
	CodeChefProblems     int `json:"codechefProblems"`
	CodeforcesProblems   int `json:"codeforcesProblems"`
	TotalProblems        int `json:"totalProblems"`
	ContestsParticipated int `json:"contestsParticipated"`
	GymDays              int `json:"gymDays"`
	CleanDietDays        int `json:"cleanDietDays"`
	DaysLogged           int `json:"daysLogged"`
}

// ComputeTotals sums per-platform problems, contests, gym and clean-diet days.
func ComputeTotals(logs []domain.DailyLog) Totals {
	t := Totals{DaysLogged: len(logs)}
	for i := range logs {
		l := &logs[i]
		t.LeetCodeProblems += l.LeetCode.ProblemsSolved
		t.CodeChefProblems += l.CodeChef.ProblemsSolved
		t.CodeforcesProblems += l.Codeforces.ProblemsSolved
		t.ContestsParticipated += ContestsParticipated(l)
		if l.Gym.Completed {
			t.GymDays++
		}
		if l.Diet.CleanDiet {
			t.CleanDietDays++
		}
	}
	t.TotalProblems = t.LeetCodeProblems + t.CodeChefProblems + t.CodeforcesProblems
	return t
}

// WeeklyCompletion is the rounded average completion score of the seven most
// recent logs (by date), not of a calendar week.
func WeeklyCompletion(logs []domain.DailyLog) int {
	sorted := sortedByDate(logs)
	if len(sorted) > 7 {
		sorted = sorted[len(sorted)-7:]
	}
	return averageScore(sorted)
}

// Compliance is days/total as a rounded percentage, 0 when total is 0.
func Compliance(days, total int) int {
	if total <= 0 {
		return 0
	}
	return int(roundHalfUp(float64(days) / float64(total) * 100))
}

func averageScore(logs []*domain.DailyLog) int {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += CompletionScore(l)
	}
	return int(roundHalfUp(float64(sum) / float64(len(logs))))
}

// TrendPoint is one day of the problems-over-time chart.
type TrendPoint struct {
	Date       time.Time `json:"date"`
	DayNumber  int       `json:"dayNumber"`
	LeetCode   int       `json:"leetcode"`
	CodeChef   int       `json:"codechef"`
	Codeforces int       `json:"codeforces"`
	Total      int       `json:"total"`
	Cumulative int       `json:"cumulative"`
}

// CumulativeTrend orders logs by date and attaches a running total of solved
// problems. Cumulative never decreases.
func CumulativeTrend(logs []domain.DailyLog) []TrendPoint {
	sorted := sortedByDate(logs)
	points := make([]TrendPoint, 0, len(sorted))
	running := 0
	for _, l := range sorted {
		total := TotalProblemsSolved(l)
		running += total
		points = append(points, TrendPoint{
			Date:       l.Date,
			DayNumber:  l.DayNumber,
			LeetCode:   l.LeetCode.ProblemsSolved,
			CodeChef:   l.CodeChef.ProblemsSolved,
			Codeforces: l.Codeforces.ProblemsSolved,
			Total:      total,
			Cumulative: running,
		})
	}
	return points
}

// PlatformShare is one slice of the platform distribution chart.
type PlatformShare struct {
	Platform string `json:"platform"`
	Problems int    `json:"problems"`
	Color    string `json:"color"`
}

func PlatformDistribution(logs []domain.DailyLog) []PlatformShare {
	t := ComputeTotals(logs)
	return []PlatformShare{
		{Platform: "LeetCode", Problems: t.LeetCodeProblems, Color: "#FFA116"},
		{Platform: "CodeChef", Problems: t.CodeChefProblems, Color: "#5B4638"},
		{Platform: "Codeforces", Problems: t.CodeforcesProblems, Color: "#1F8ACB"},
	}
}

// DifficultyShare is one bar of the difficulty breakdown chart.
type DifficultyShare struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Color      string `json:"color"`
}

// DifficultyBreakdown groups LeetCode solved counts by the day's difficulty tag.
// Days tagged "none" are left out.
func DifficultyBreakdown(logs []domain.DailyLog) []DifficultyShare {
	var easy, medium, hard int
	for i := range logs {
		lc := logs[i].LeetCode
		switch lc.ProblemDifficulty {
		case domain.DifficultyEasy:
			easy += lc.ProblemsSolved
		case domain.DifficultyMedium:
			medium += lc.ProblemsSolved
		case domain.DifficultyHard:
			hard += lc.ProblemsSolved
		}
	}
	return []DifficultyShare{
		{Difficulty: "Easy", Count: easy, Color: "#00B8A3"},
		{Difficulty: "Medium", Count: medium, Color: "#FFC01E"},
		{Difficulty: "Hard", Count: hard, Color: "#FF375F"},
	}
}

// HeatmapCell is one day of the activity calendar.
type HeatmapCell struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
	Level int    `json:"level"`
}

func Heatmap(logs []domain.DailyLog) []HeatmapCell {
	sorted := sortedByDate(logs)
	cells := make([]HeatmapCell, 0, len(sorted))
	for _, l := range sorted {
		score := CompletionScore(l)
		cells = append(cells, HeatmapCell{
			Date:  domain.FormatDay(l.Date),
			Value: score,
			Level: HeatmapLevel(score),
		})
	}
	return cells
}

// RatingPoint is a Codeforces rating snapshot recorded on a daily log.
type RatingPoint struct {
	Date      time.Time `json:"date"`
	DayNumber int       `json:"dayNumber"`
	Rating    int       `json:"rating"`
}

// RatingHistory lists the logs that carry a Codeforces rating, oldest first.
func RatingHistory(logs []domain.DailyLog) []RatingPoint {
	points := []RatingPoint{}
	for _, l := range sortedByDate(logs) {
		if l.Codeforces.Rating == nil {
			continue
		}
		points = append(points, RatingPoint{Date: l.Date, DayNumber: l.DayNumber, Rating: *l.Codeforces.Rating})
	}
	return points
}

// WeekSummary aggregates the logs of one challenge week.
type WeekSummary struct {
	WeekNumber             int       `json:"weekNumber"`
	WeekStart              time.Time `json:"weekStart"`
	WeekEnd                time.Time `json:"weekEnd"`
	DaysLogged             int       `json:"daysLogged"`
	TotalProblemsSolved    int       `json:"totalProblemsSolved"`
	LeetCodeProblems       int       `json:"leetcodeProblems"`
	CodeChefProblems       int       `json:"codechefProblems"`
	CodeforcesProblems     int       `json:"codeforcesProblems"`
	ContestsParticipated   int       `json:"contestsParticipated"`
	GymDays                int       `json:"gymDays"`
	CleanDietDays          int       `json:"cleanDietDays"`
	AverageCompletionScore int       `json:"averageCompletionScore"`
}

// WeeklySummary aggregates the logs falling inside challenge week `week`
// (logs outside the week are ignored).
func WeeklySummary(start time.Time, week int, logs []domain.DailyLog) WeekSummary {
	first, last := WeekBounds(start, week)
	var inWeek []domain.DailyLog
	for i := range logs {
		if DaysBetween(first, logs[i].Date) >= 0 && DaysBetween(logs[i].Date, last) >= 0 {
			inWeek = append(inWeek, logs[i])
		}
	}
	t := ComputeTotals(inWeek)
	return WeekSummary{
		WeekNumber:             week,
		WeekStart:              first,
		WeekEnd:                last,
		DaysLogged:             t.DaysLogged,
		TotalProblemsSolved:    t.TotalProblems,
		LeetCodeProblems:       t.LeetCodeProblems,
		CodeChefProblems:       t.CodeChefProblems,
		CodeforcesProblems:     t.CodeforcesProblems,
		ContestsParticipated:   t.ContestsParticipated,
		GymDays:                t.GymDays,
		CleanDietDays:          t.CleanDietDays,
		AverageCompletionScore: averageScore(sortedByDate(inWeek)),
	}
}
