package analytics

import (
	"sort"

	"alcyxob/challenge75/internal/domain"
)

// SheetStats counts the entries of a sheet by status and difficulty.
type SheetStats struct {
	Total    int `json:"total"`
	Solved   int `json:"solved"`
	Revision int `json:"revision"`
	Pending  int `json:"pending"`
	Easy     int `json:"easy"`
	Medium   int `json:"medium"`
	Hard     int `json:"hard"`
}

func ComputeSheetStats(problems []domain.SheetProblem) SheetStats {
	s := SheetStats{Total: len(problems)}
	for i := range problems {
		switch problems[i].Status {
		case domain.SheetStatusSolved:
			s.Solved++
		case domain.SheetStatusRevision:
			s.Revision++
		case domain.SheetStatusPending:
			s.Pending++
		}
		switch problems[i].Difficulty {
		case domain.DifficultyEasy:
			s.Easy++
		case domain.DifficultyMedium:
			s.Medium++
		case domain.DifficultyHard:
			s.Hard++
		}
	}
	return s
}

// GroupByTopic buckets sheet problems by topic, preserving input order within each topic.
func GroupByTopic(problems []domain.SheetProblem) map[string][]domain.SheetProblem {
	grouped := make(map[string][]domain.SheetProblem)
	for _, p := range problems {
		grouped[p.Topic] = append(grouped[p.Topic], p)
	}
	return grouped
}

// TagCount is one entry of the tag distribution.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ProblemStats summarises the personal problem log.
type ProblemStats struct {
	Total           int        `json:"total"`
	Easy            int        `json:"easy"`
	Medium          int        `json:"medium"`
	Hard            int        `json:"hard"`
	LeetCode        int        `json:"leetcode"`
	CodeChef        int        `json:"codechef"`
	Codeforces      int        `json:"codeforces"`
	TotalTimeSpent  int        `json:"totalTimeSpent"`
	TagDistribution []TagCount `json:"tagDistribution"`
}

// MaxTags caps the tag distribution.
const MaxTags = 20

func ComputeProblemStats(problems []domain.Problem) ProblemStats {
	s := ProblemStats{Total: len(problems)}
	tags := make(map[string]int)
	for i := range problems {
		p := &problems[i]
		switch p.Difficulty {
		case domain.DifficultyEasy:
			s.Easy++
		case domain.DifficultyMedium:
			s.Medium++
		case domain.DifficultyHard:
			s.Hard++
		}
		switch p.Platform {
		case domain.PlatformLeetCode:
			s.LeetCode++
		case domain.PlatformCodeChef:
			s.CodeChef++
		case domain.PlatformCodeforces:
			s.Codeforces++
		}
		s.TotalTimeSpent += p.TimeSpent
		for _, t := range p.Tags {
			tags[t]++
		}
	}
	s.TagDistribution = make([]TagCount, 0, len(tags))
	for t, c := range tags {
		s.TagDistribution = append(s.TagDistribution, TagCount{Tag: t, Count: c})
	}
	sort.Slice(s.TagDistribution, func(i, j int) bool {
		a, b := s.TagDistribution[i], s.TagDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Tag < b.Tag
	})
	if len(s.TagDistribution) > MaxTags {
		s.TagDistribution = s.TagDistribution[:MaxTags]
	}
	return s
}
