package analytics

import "alcyxob/challenge75/internal/domain"

const (
	// ChecksPerDay is the number of binary checks behind a completion score.
	ChecksPerDay = 5
	// ActiveThreshold is the minimum completion score for a day to count as active.
	ActiveThreshold = 60
)

// CompletionScore is the percentage of the five daily checks satisfied by l:
// LeetCode, CodeChef and Codeforces activity, gym and clean diet.
// The result is always one of 0, 20, 40, 60, 80, 100.
func CompletionScore(l *domain.DailyLog) int {
	passed := 0
	if l.LeetCode.ProblemsSolved > 0 || l.LeetCode.ContestParticipated {
		passed++
	}
	if l.CodeChef.DailyProblem || l.CodeChef.ContestParticipated {
		passed++
	}
	if l.Codeforces.ProblemsSolved > 0 || l.Codeforces.ContestParticipated {
		passed++
	}
	if l.Gym.Completed {
		passed++
	}
	if l.Diet.CleanDiet {
		passed++
	}
	return int(roundHalfUp(float64(passed) / ChecksPerDay * 100))
}

// IsActive reports whether l reaches ActiveThreshold.
func IsActive(l *domain.DailyLog) bool {
	return CompletionScore(l) >= ActiveThreshold
}

// TotalProblemsSolved sums the solved counts of the three platforms.
func TotalProblemsSolved(l *domain.DailyLog) int {
	return l.LeetCode.ProblemsSolved + l.CodeChef.ProblemsSolved + l.Codeforces.ProblemsSolved
}

// ContestsParticipated counts the platforms on which l records a contest.
func ContestsParticipated(l *domain.DailyLog) int {
	n := 0
	for _, took := range []bool{l.LeetCode.ContestParticipated, l.CodeChef.ContestParticipated, l.Codeforces.ContestParticipated} {
		if took {
			n++
		}
	}
	return n
}

// HeatmapLevel buckets a completion score into the 0..4 intensity used by the calendar heatmap.
func HeatmapLevel(score int) int {
	switch {
	case score >= 80:
		return 4
	case score >= 60:
		return 3
	case score >= 40:
		return 2
	case score >= 20:
		return 1
	default:
		return 0
	}
}
