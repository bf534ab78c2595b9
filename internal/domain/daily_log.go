package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty tags used by daily logs, sheet problems, buckets and the problem log.
type Difficulty string

const (
	DifficultyNone    Difficulty = "none"
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyUnknown Difficulty = "unknown"
)

// WorkoutType is the kind of gym session logged for a day.
type WorkoutType string

const (
	WorkoutPush   WorkoutType = "push"
	WorkoutPull   WorkoutType = "pull"
	WorkoutLegs   WorkoutType = "legs"
	WorkoutCardio WorkoutType = "cardio"
	WorkoutRest   WorkoutType = "rest"
	WorkoutOther  WorkoutType = "other"
	WorkoutNone   WorkoutType = "none"
)

func (w WorkoutType) Valid() bool {
	switch w {
	case WorkoutPush, WorkoutPull, WorkoutLegs, WorkoutCardio, WorkoutRest, WorkoutOther, WorkoutNone:
		return true
	}
	return false
}

type LeetCodeActivity struct {
	ContestParticipated bool       `bson:"contestParticipated" json:"contestParticipated"`
	ProblemsSolved      int        `bson:"problemsSolved" json:"problemsSolved"`
	ProblemDifficulty   Difficulty `bson:"problemDifficulty" json:"problemDifficulty"`
}

type CodeChefActivity struct {
	DailyProblem        bool `bson:"dailyProblem" json:"dailyProblem"`
	ContestParticipated bool `bson:"contestParticipated" json:"contestParticipated"`
	ProblemsSolved      int  `bson:"problemsSolved" json:"problemsSolved"`
}

type CodeforcesActivity struct {
	ProblemsSolved      int  `bson:"problemsSolved" json:"problemsSolved"`
	ContestParticipated bool `bson:"contestParticipated" json:"contestParticipated"`
	Rating              *int `bson:"rating" json:"rating"`
}

type GymActivity struct {
	Completed   bool        `bson:"completed" json:"completed"`
	WorkoutType WorkoutType `bson:"workoutType" json:"workoutType"`
	Duration    int         `bson:"duration" json:"duration"` // minutes
}

type DietActivity struct {
	CleanDiet bool     `bson:"cleanDiet" json:"cleanDiet"`
	Calories  *float64 `bson:"calories" json:"calories"`
	Protein   *float64 `bson:"protein" json:"protein"` // grams
	Notes     string   `bson:"notes" json:"notes"`
}

type InternshipPrep struct {
	Completed  bool     `bson:"completed" json:"completed"`
	HoursSpent float64  `bson:"hoursSpent" json:"hoursSpent"`
	Topics     []string `bson:"topics" json:"topics"`
}

// DailyLog is the single record a user keeps per calendar day.
// (UserID, Date) is unique.
type DailyLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	DayNumber int                `bson:"dayNumber" json:"dayNumber"` // 1..75, relabelled on every save

	LeetCode       LeetCodeActivity   `bson:"leetcode" json:"leetcode"`
	CodeChef       CodeChefActivity   `bson:"codechef" json:"codechef"`
	Codeforces     CodeforcesActivity `bson:"codeforces" json:"codeforces"`
	Gym            GymActivity        `bson:"gym" json:"gym"`
	Diet           DietActivity       `bson:"diet" json:"diet"`
	InternshipPrep InternshipPrep     `bson:"internshipPrep" json:"internshipPrep"`
	Notes          string             `bson:"notes" json:"notes"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewDailyLog returns an empty log for the given day with every tag at its default.
func NewDailyLog(userID primitive.ObjectID, date time.Time) *DailyLog {
	return &DailyLog{
		UserID:         userID,
		Date:           Day(date),
		LeetCode:       LeetCodeActivity{ProblemDifficulty: DifficultyNone},
		Gym:            GymActivity{WorkoutType: WorkoutNone},
		InternshipPrep: InternshipPrep{Topics: []string{}},
	}
}

// Validate checks the invariants a log must satisfy before it is persisted.
func (l *DailyLog) Validate() error {
	if l.UserID == primitive.NilObjectID {
		return invalid("userId", "is required")
	}
	if l.Date.IsZero() {
		return invalid("date", "is required")
	}
	if err := nonNegative("leetcode.problemsSolved", l.LeetCode.ProblemsSolved); err != nil {
		return err
	}
	switch l.LeetCode.ProblemDifficulty {
	case DifficultyNone, DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return invalid("leetcode.problemDifficulty", "must be one of none, easy, medium, hard")
	}
	if err := nonNegative("codechef.problemsSolved", l.CodeChef.ProblemsSolved); err != nil {
		return err
	}
	if err := nonNegative("codeforces.problemsSolved", l.Codeforces.ProblemsSolved); err != nil {
		return err
	}
	if l.Codeforces.Rating != nil && *l.Codeforces.Rating < 0 {
		return invalid("codeforces.rating", "must be >= 0")
	}
	if !l.Gym.WorkoutType.Valid() {
		return invalid("gym.workoutType", "%q is not a known workout type", l.Gym.WorkoutType)
	}
	if err := nonNegative("gym.duration", l.Gym.Duration); err != nil {
		return err
	}
	if l.Diet.Calories != nil && *l.Diet.Calories < 0 {
		return invalid("diet.calories", "must be >= 0")
	}
	if l.Diet.Protein != nil && *l.Diet.Protein < 0 {
		return invalid("diet.protein", "must be >= 0")
	}
	if l.InternshipPrep.HoursSpent < 0 {
		return invalid("internshipPrep.hoursSpent", "must be >= 0")
	}
	return nil
}
