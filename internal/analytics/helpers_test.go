package analytics

import (
	"time"

	"alcyxob/challenge75/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// logWithScore builds a log on date whose completion score is `checks` * 20.
func logWithScore(date string, checks int) domain.DailyLog {
	l := domain.NewDailyLog(primitive.NewObjectID(), day(date))
	if checks >= 1 {
		l.LeetCode.ProblemsSolved = 1
	}
	if checks >= 2 {
		l.CodeChef.DailyProblem = true
	}
	if checks >= 3 {
		l.Codeforces.ContestParticipated = true
	}
	if checks >= 4 {
		l.Gym.Completed = true
	}
	if checks >= 5 {
		l.Diet.CleanDiet = true
	}
	return *l
}
