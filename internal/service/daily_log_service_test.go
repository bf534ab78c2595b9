package service

import (
	"context"
	"testing"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dailyLogFixture struct {
	svc   DailyLogService
	users *fakeUserRepo
	logs  *fakeDailyLogRepo
	user  *domain.User
}

func newDailyLogFixture(today string) *dailyLogFixture {
	users := newFakeUserRepo()
	logs := newFakeDailyLogRepo()
	return &dailyLogFixture{
		svc:   NewDailyLogService(users, logs, fixedClock(today)),
		users: users,
		logs:  logs,
		user:  users.seedUser(mustDay("2024-01-01")),
	}
}

func TestSaveCreatesAndMerges(t *testing.T) {
	f := newDailyLogFixture("2024-01-05")
	ctx := context.Background()
	date := mustDay("2024-01-03")

	first, err := f.svc.Save(ctx, f.user.ID, date, &domain.DailyLogPatch{
		LeetCode: &domain.LeetCodePatch{ProblemsSolved: ptr(3)},
		Gym:      &domain.GymPatch{Completed: ptr(true), WorkoutType: ptr(domain.WorkoutPush)},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, first.DayNumber)
	assert.Equal(t, domain.DifficultyNone, first.LeetCode.ProblemDifficulty)

	second, err := f.svc.Save(ctx, f.user.ID, date, &domain.DailyLogPatch{
		LeetCode: &domain.LeetCodePatch{ContestParticipated: ptr(true)},
		Notes:    ptr("good day"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.LeetCode.ProblemsSolved, "fields not in the patch are kept")
	assert.True(t, second.LeetCode.ContestParticipated)
	assert.True(t, second.Gym.Completed)
	assert.Equal(t, "good day", second.Notes)
	assert.Len(t, f.logs.logs, 1)
}

func TestSaveRelabelsDayNumberOutsideWindow(t *testing.T) {
	f := newDailyLogFixture("2024-06-01")

	dl, err := f.svc.Save(context.Background(), f.user.ID, mustDay("2024-05-01"), &domain.DailyLogPatch{})
	require.NoError(t, err)
	assert.Equal(t, 75, dl.DayNumber)

	dl, err = f.svc.Save(context.Background(), f.user.ID, mustDay("2023-12-01"), &domain.DailyLogPatch{})
	require.NoError(t, err)
	assert.Equal(t, 1, dl.DayNumber)
}

func TestSaveRejectsInvalidPatch(t *testing.T) {
	f := newDailyLogFixture("2024-01-05")

	_, err := f.svc.Save(context.Background(), f.user.ID, mustDay("2024-01-02"), &domain.DailyLogPatch{
		Codeforces: &domain.CodeforcesPatch{ProblemsSolved: ptr(-1)},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.logs.logs)
}

func TestSaveUnknownUser(t *testing.T) {
	f := newDailyLogFixture("2024-01-05")
	_, err := f.svc.Save(context.Background(), newFakeUserRepo().seedUser(mustDay("2024-01-01")).ID, mustDay("2024-01-02"), nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetReturnsTemplateForMissingDay(t *testing.T) {
	f := newDailyLogFixture("2024-01-05")

	view, err := f.svc.Get(context.Background(), f.user.ID, mustDay("2024-01-04"))
	require.NoError(t, err)
	assert.True(t, view.IsNew)
	assert.Equal(t, 4, view.DayNumber)
	assert.Equal(t, domain.WorkoutNone, view.Gym.WorkoutType)
	assert.Empty(t, f.logs.logs, "a template is not persisted")

	_, err = f.svc.Save(context.Background(), f.user.ID, mustDay("2024-01-04"), &domain.DailyLogPatch{Notes: ptr("x")})
	require.NoError(t, err)
	view, err = f.svc.Get(context.Background(), f.user.ID, mustDay("2024-01-04"))
	require.NoError(t, err)
	assert.False(t, view.IsNew)
	assert.Equal(t, "x", view.Notes)
}

func TestListAndDelete(t *testing.T) {
	f := newDailyLogFixture("2024-01-10")
	ctx := context.Background()
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := f.svc.Save(ctx, f.user.ID, mustDay(d), &domain.DailyLogPatch{})
		require.NoError(t, err)
	}

	logs, err := f.svc.List(ctx, f.user.ID, repository.DateRange{}, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, mustDay("2024-01-03"), logs[0].Date, "newest first")

	logs, err = f.svc.List(ctx, f.user.ID, repository.DateRange{From: mustDay("2024-01-02")}, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	_, err = f.svc.List(ctx, f.user.ID, repository.DateRange{From: mustDay("2024-01-05"), To: mustDay("2024-01-01")}, 0)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, f.svc.Delete(ctx, f.user.ID, mustDay("2024-01-02")))
	assert.ErrorIs(t, f.svc.Delete(ctx, f.user.ID, mustDay("2024-01-02")), ErrDailyLogNotFound)
}

func TestStreakUsesClockToday(t *testing.T) {
	f := newDailyLogFixture("2024-01-04")
	ctx := context.Background()
	active := &domain.DailyLogPatch{
		LeetCode: &domain.LeetCodePatch{ProblemsSolved: ptr(2)},
		CodeChef: &domain.CodeChefPatch{DailyProblem: ptr(true)},
		Gym:      &domain.GymPatch{Completed: ptr(true), WorkoutType: ptr(domain.WorkoutLegs)},
		Diet:     &domain.DietPatch{CleanDiet: ptr(true)},
	}
	for _, d := range []string{"2024-01-02", "2024-01-03"} {
		_, err := f.svc.Save(ctx, f.user.ID, mustDay(d), active)
		require.NoError(t, err)
	}

	streak, err := f.svc.Streak(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
}

func TestWeeklySummary(t *testing.T) {
	f := newDailyLogFixture("2024-01-20")
	ctx := context.Background()
	for _, d := range []string{"2024-01-08", "2024-01-09", "2024-01-15"} {
		_, err := f.svc.Save(ctx, f.user.ID, mustDay(d), &domain.DailyLogPatch{
			LeetCode: &domain.LeetCodePatch{ProblemsSolved: ptr(2)},
		})
		require.NoError(t, err)
	}

	summary, err := f.svc.WeeklySummary(ctx, f.user.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.WeekNumber)
	assert.Equal(t, mustDay("2024-01-08"), summary.WeekStart)
	assert.Equal(t, mustDay("2024-01-14"), summary.WeekEnd)
	assert.Equal(t, 2, summary.DaysLogged)
	assert.Equal(t, 4, summary.LeetCodeProblems)

	_, err = f.svc.WeeklySummary(ctx, f.user.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)
}
