package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BucketProblem is a template entry that gets copied into user sheets.
type BucketProblem struct {
	Title       string     `bson:"title" json:"title"`
	Topic       string     `bson:"topic" json:"topic"`
	Difficulty  Difficulty `bson:"difficulty" json:"difficulty"`
	ProblemLink string     `bson:"problemLink" json:"problemLink"`
	ArticleLink string     `bson:"articleLink" json:"articleLink"`
	YoutubeLink string     `bson:"youtubeLink" json:"youtubeLink"`
	Platform    Platform   `bson:"platform" json:"platform"`
	Tags        []string   `bson:"tags" json:"tags"`
	Order       int        `bson:"order" json:"order"`
}

type DifficultyBreakdown struct {
	Easy   int `bson:"easy" json:"easy"`
	Medium int `bson:"medium" json:"medium"`
	Hard   int `bson:"hard" json:"hard"`
}

// Bucket is a shared, admin-curated set of problems importable into a sheet.
// Name is unique.
type Bucket struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Description         string              `bson:"description" json:"description"`
	Category            string              `bson:"category" json:"category"`
	Icon                string              `bson:"icon" json:"icon"`
	Color               string              `bson:"color" json:"color"`
	Problems            []BucketProblem     `bson:"problems" json:"problems,omitempty"`
	TotalProblems       int                 `bson:"totalProblems" json:"totalProblems"`
	DifficultyBreakdown DifficultyBreakdown `bson:"difficultyBreakdown" json:"difficultyBreakdown"`
	Topics              []string            `bson:"topics" json:"topics"`
	IsActive            bool                `bson:"isActive" json:"isActive"`
	Popularity          int                 `bson:"popularity" json:"popularity"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}

var bucketCategories = map[string]bool{
	"dsa": true, "graph": true, "dp": true, "trees": true, "strings": true, "arrays": true,
	"linked-list": true, "stack-queue": true, "binary-search": true, "greedy": true,
	"backtracking": true, "bit-manipulation": true, "math": true, "system-design": true, "other": true,
}

// RecomputeStats derives the total, difficulty breakdown and topic list from Problems.
// Topics keep first-seen order.
func (b *Bucket) RecomputeStats() {
	b.TotalProblems = len(b.Problems)
	b.DifficultyBreakdown = DifficultyBreakdown{}
	b.Topics = make([]string, 0, len(b.Problems))
	seen := make(map[string]bool)
	for _, p := range b.Problems {
		switch p.Difficulty {
		case DifficultyEasy:
			b.DifficultyBreakdown.Easy++
		case DifficultyMedium:
			b.DifficultyBreakdown.Medium++
		case DifficultyHard:
			b.DifficultyBreakdown.Hard++
		}
		if !seen[p.Topic] {
			seen[p.Topic] = true
			b.Topics = append(b.Topics, p.Topic)
		}
	}
}

func (b *Bucket) Validate() error {
	if b.Name == "" {
		return invalid("name", "is required")
	}
	if !bucketCategories[b.Category] {
		return invalid("category", "%q is not a known bucket category", b.Category)
	}
	for i, p := range b.Problems {
		if p.Title == "" || p.Topic == "" {
			return invalid("problems", "entry %d needs a title and a topic", i)
		}
		if !ValidSheetDifficulty(p.Difficulty) {
			return invalid("problems", "entry %d has unknown difficulty %q", i, p.Difficulty)
		}
	}
	return nil
}
