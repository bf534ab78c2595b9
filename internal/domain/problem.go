package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProblemStatus of an entry in the personal problem log.
type ProblemStatus string

const (
	ProblemSolved    ProblemStatus = "solved"
	ProblemAttempted ProblemStatus = "attempted"
	ProblemRevisit   ProblemStatus = "revisit"
	ProblemTodo      ProblemStatus = "todo"
)

func (s ProblemStatus) Valid() bool {
	switch s {
	case ProblemSolved, ProblemAttempted, ProblemRevisit, ProblemTodo:
		return true
	}
	return false
}

// Problem is an entry of the personal problem log. Entries created from a
// sheet carry SheetProblemID; at most one problem exists per sheet problem.
type Problem struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID  `bson:"userId" json:"userId"`
	Title          string              `bson:"title" json:"title"`
	Link           string              `bson:"link" json:"link"`
	Code           string              `bson:"code" json:"code"`
	Language       Language            `bson:"language" json:"language"`
	Notes          string              `bson:"notes" json:"notes"`
	Platform       Platform            `bson:"platform" json:"platform"`
	Difficulty     Difficulty          `bson:"difficulty" json:"difficulty"`
	Status         ProblemStatus       `bson:"status" json:"status"`
	Tags           []string            `bson:"tags" json:"tags"`
	TimeSpent      int                 `bson:"timeSpent" json:"timeSpent"` // minutes
	SolvedAt       time.Time           `bson:"solvedAt" json:"solvedAt"`
	DailyLogID     *primitive.ObjectID `bson:"dailyLogId,omitempty" json:"dailyLogId,omitempty"`
	SheetID        *primitive.ObjectID `bson:"sheetId,omitempty" json:"sheetId,omitempty"`
	SheetTopic     string              `bson:"sheetTopic,omitempty" json:"sheetTopic,omitempty"`
	SheetProblemID *primitive.ObjectID `bson:"sheetProblemId,omitempty" json:"sheetProblemId,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func validProblemPlatform(p Platform) bool {
	switch p {
	case PlatformLeetCode, PlatformCodeChef, PlatformCodeforces, PlatformGeeksForGeeks,
		PlatformHackerRank, PlatformAtCoder, PlatformOther:
		return true
	}
	return false
}

func (p *Problem) Validate() error {
	if p.Title == "" {
		return invalid("title", "is required")
	}
	if len(p.Title) > 200 {
		return invalid("title", "must be at most 200 characters")
	}
	if p.Link == "" && p.SheetProblemID == nil {
		return invalid("link", "is required")
	}
	if !validProblemPlatform(p.Platform) {
		return invalid("platform", "%q is not a known platform", p.Platform)
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyUnknown:
	default:
		return invalid("difficulty", "must be one of easy, medium, hard, unknown")
	}
	if !p.Status.Valid() {
		return invalid("status", "must be one of solved, attempted, revisit, todo")
	}
	if !p.Language.Valid() {
		return invalid("language", "%q is not a known language", p.Language)
	}
	return nonNegative("timeSpent", p.TimeSpent)
}
