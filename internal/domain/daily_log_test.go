package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func stringPtr(s string) *string  { return &s }

func TestNewDailyLogDefaults(t *testing.T) {
	l := NewDailyLog(primitive.NewObjectID(), time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC))
	assert.Equal(t, Day(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)), l.Date)
	assert.Equal(t, DifficultyNone, l.LeetCode.ProblemDifficulty)
	assert.Equal(t, WorkoutNone, l.Gym.WorkoutType)
	assert.NotNil(t, l.InternshipPrep.Topics)
	assert.NoError(t, l.Validate())
}

func TestDailyLogPatchMergesFieldByField(t *testing.T) {
	l := NewDailyLog(primitive.NewObjectID(), time.Now())
	l.LeetCode.ProblemsSolved = 2
	l.LeetCode.ContestParticipated = true
	l.Gym.Completed = true
	l.Diet.Calories = floatPtr(2100)
	l.Notes = "morning"

	push := WorkoutPush
	patch := &DailyLogPatch{
		LeetCode: &LeetCodePatch{ProblemsSolved: intPtr(4)},
		Gym:      &GymPatch{WorkoutType: &push, Duration: intPtr(60)},
		Diet:     &DietPatch{CleanDiet: boolPtr(true)},
	}
	patch.Apply(l)

	assert.Equal(t, 4, l.LeetCode.ProblemsSolved)
	assert.True(t, l.LeetCode.ContestParticipated, "unsent field keeps its value")
	assert.True(t, l.Gym.Completed)
	assert.Equal(t, WorkoutPush, l.Gym.WorkoutType)
	assert.Equal(t, 60, l.Gym.Duration)
	assert.True(t, l.Diet.CleanDiet)
	require.NotNil(t, l.Diet.Calories)
	assert.Equal(t, 2100.0, *l.Diet.Calories)
	assert.Equal(t, "morning", l.Notes, "nil block leaves notes untouched")
}

func TestDailyLogPatchCanClearBooleans(t *testing.T) {
	l := NewDailyLog(primitive.NewObjectID(), time.Now())
	l.Gym.Completed = true

	(&DailyLogPatch{Gym: &GymPatch{Completed: boolPtr(false)}, Notes: stringPtr("")}).Apply(l)
	assert.False(t, l.Gym.Completed)
	assert.Equal(t, "", l.Notes)
}

func TestDailyLogPatchCopiesSlices(t *testing.T) {
	topics := []string{"graphs"}
	l := NewDailyLog(primitive.NewObjectID(), time.Now())
	(&DailyLogPatch{InternshipPrep: &InternshipPrepPatch{Topics: topics}}).Apply(l)
	topics[0] = "changed"
	assert.Equal(t, []string{"graphs"}, l.InternshipPrep.Topics)
}

func TestNilDailyLogPatch(t *testing.T) {
	l := NewDailyLog(primitive.NewObjectID(), time.Now())
	before := *l
	var p *DailyLogPatch
	p.Apply(l)
	assert.Equal(t, before, *l)
}

func TestDailyLogValidate(t *testing.T) {
	fresh := func() *DailyLog { return NewDailyLog(primitive.NewObjectID(), time.Now()) }

	cases := map[string]struct {
		mutate func(*DailyLog)
		field  string
	}{
		"negative leetcode":   {func(l *DailyLog) { l.LeetCode.ProblemsSolved = -1 }, "leetcode.problemsSolved"},
		"unknown difficulty":  {func(l *DailyLog) { l.LeetCode.ProblemDifficulty = "brutal" }, "leetcode.problemDifficulty"},
		"negative codeforces": {func(l *DailyLog) { l.Codeforces.ProblemsSolved = -3 }, "codeforces.problemsSolved"},
		"negative rating":     {func(l *DailyLog) { l.Codeforces.Rating = intPtr(-1) }, "codeforces.rating"},
		"bad workout":         {func(l *DailyLog) { l.Gym.WorkoutType = "yoga" }, "gym.workoutType"},
		"negative calories":   {func(l *DailyLog) { l.Diet.Calories = floatPtr(-5) }, "diet.calories"},
		"missing user":        {func(l *DailyLog) { l.UserID = primitive.NilObjectID }, "userId"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l := fresh()
			tc.mutate(l)
			err := l.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.field, err.(*ValidationError).Field)
		})
	}
}
