package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SheetProblemStatus tracks a checklist entry.
type SheetProblemStatus string

const (
	SheetStatusPending  SheetProblemStatus = "pending"
	SheetStatusSolved   SheetProblemStatus = "solved"
	SheetStatusRevision SheetProblemStatus = "revision"
)

func (s SheetProblemStatus) Valid() bool {
	return s == SheetStatusPending || s == SheetStatusSolved || s == SheetStatusRevision
}

// SheetProblem is one entry of a sheet.
type SheetProblem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	SheetID         primitive.ObjectID `bson:"sheetId" json:"sheetId"`
	Title           string             `bson:"title" json:"title"`
	Topic           string             `bson:"topic" json:"topic"` // e.g. "Day 1", "Arrays"
	ProblemNumber   int                `bson:"problemNumber" json:"problemNumber"`
	Difficulty      Difficulty         `bson:"difficulty" json:"difficulty"`
	ProblemLink     string             `bson:"problemLink" json:"problemLink"`
	ArticleLink     string             `bson:"articleLink" json:"articleLink"`
	YoutubeLink     string             `bson:"youtubeLink" json:"youtubeLink"`
	Status          SheetProblemStatus `bson:"status" json:"status"`
	Code            string             `bson:"code" json:"code"`
	Language        Language           `bson:"language" json:"language"`
	Notes           string             `bson:"notes" json:"notes"`
	RevisionCount   int                `bson:"revisionCount" json:"revisionCount"`
	LastAttemptedAt *time.Time         `bson:"lastAttemptedAt,omitempty" json:"lastAttemptedAt,omitempty"`
	Order           int                `bson:"order" json:"order"`
	Platform        Platform           `bson:"platform" json:"platform"`
	Tags            []string           `bson:"tags" json:"tags"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidSheetDifficulty reports whether d is allowed on a sheet or bucket entry.
func ValidSheetDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

func validSheetPlatform(p Platform) bool {
	switch p {
	case PlatformLeetCode, PlatformGeeksForGeeks, PlatformCodeChef, PlatformCodeforces,
		PlatformHackerRank, PlatformInterviewBit, PlatformOther:
		return true
	}
	return false
}

func (p *SheetProblem) Validate() error {
	if p.Title == "" {
		return invalid("title", "is required")
	}
	if len(p.Title) > 300 {
		return invalid("title", "must be at most 300 characters")
	}
	if p.Topic == "" {
		return invalid("topic", "is required")
	}
	if !ValidSheetDifficulty(p.Difficulty) {
		return invalid("difficulty", "must be one of easy, medium, hard")
	}
	if !p.Status.Valid() {
		return invalid("status", "must be one of pending, solved, revision")
	}
	if !validSheetPlatform(p.Platform) {
		return invalid("platform", "%q is not supported for sheet problems", p.Platform)
	}
	if !p.Language.Valid() {
		return invalid("language", "%q is not a known language", p.Language)
	}
	return nil
}
