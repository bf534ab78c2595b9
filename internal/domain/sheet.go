package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SheetCategory groups sheets on the dashboard.
type SheetCategory string

const (
	CategoryDSA          SheetCategory = "dsa"
	CategoryCP           SheetCategory = "cp"
	CategoryOS           SheetCategory = "os"
	CategoryCN           SheetCategory = "cn"
	CategoryOOPS         SheetCategory = "oops"
	CategoryDev          SheetCategory = "dev"
	CategorySystemDesign SheetCategory = "system-design"
	CategoryCustom       SheetCategory = "custom"
)

func (c SheetCategory) Valid() bool {
	switch c {
	case CategoryDSA, CategoryCP, CategoryOS, CategoryCN, CategoryOOPS, CategoryDev, CategorySystemDesign, CategoryCustom:
		return true
	}
	return false
}

type SubTopic struct {
	Name           string `bson:"name" json:"name"`
	TotalProblems  int    `bson:"totalProblems" json:"totalProblems"`
	SolvedProblems int    `bson:"solvedProblems" json:"solvedProblems"`
}

// Topic is a section of a sheet with its own solved/total counters.
type Topic struct {
	Name           string     `bson:"name" json:"name"`
	Description    string     `bson:"description" json:"description"`
	TotalProblems  int        `bson:"totalProblems" json:"totalProblems"`
	SolvedProblems int        `bson:"solvedProblems" json:"solvedProblems"`
	Order          int        `bson:"order" json:"order"`
	SubTopics      []SubTopic `bson:"subTopics,omitempty" json:"subTopics,omitempty"`
}

// Sheet is a user-curated checklist of practice problems grouped by topic.
// TotalProblems/SolvedProblems mirror the sheet_problems collection and are
// recomputed from it after every write.
type Sheet struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Category       SheetCategory      `bson:"category" json:"category"`
	Color          string             `bson:"color" json:"color"`
	Icon           string             `bson:"icon" json:"icon"`
	Topics         []Topic            `bson:"topics" json:"topics"`
	TotalProblems  int                `bson:"totalProblems" json:"totalProblems"`
	SolvedProblems int                `bson:"solvedProblems" json:"solvedProblems"`
	IsTemplate     bool               `bson:"isTemplate" json:"isTemplate"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	TargetDate     *time.Time         `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CompletionPercentage is solved/total as a rounded percentage, 0 for an empty sheet.
func (s *Sheet) CompletionPercentage() int {
	if s.TotalProblems == 0 {
		return 0
	}
	return int(math.Floor(float64(s.SolvedProblems)/float64(s.TotalProblems)*100 + 0.5))
}

// FindTopic returns the topic with the given name, or nil.
func (s *Sheet) FindTopic(name string) *Topic {
	for i := range s.Topics {
		if s.Topics[i].Name == name {
			return &s.Topics[i]
		}
	}
	return nil
}

func (s *Sheet) Validate() error {
	if s.UserID == primitive.NilObjectID {
		return invalid("userId", "is required")
	}
	if s.Name == "" {
		return invalid("name", "is required")
	}
	if len(s.Name) > 100 {
		return invalid("name", "must be at most 100 characters")
	}
	if !s.Category.Valid() {
		return invalid("category", "%q is not a known sheet category", s.Category)
	}
	return nil
}
