package analytics

import (
	"math"
	"sort"
	"time"

	"alcyxob/challenge75/internal/domain"
)

// WeightPoint is one weigh-in on the weight chart.
type WeightPoint struct {
	Date       time.Time `json:"date"`
	Weight     float64   `json:"weight"`
	WeekNumber int       `json:"weekNumber"`
	Target     *float64  `json:"target"`
}

// WeightSeries lists weigh-ins oldest first, each annotated with the target.
func WeightSeries(logs []domain.PhysiqueLog, target *float64) []WeightPoint {
	sorted := sortedPhysique(logs)
	points := make([]WeightPoint, 0, len(sorted))
	for _, p := range sorted {
		points = append(points, WeightPoint{Date: p.Date, Weight: p.Weight, WeekNumber: p.WeekNumber, Target: target})
	}
	return points
}

// WeightProgress is the dashboard weight block.
type WeightProgress struct {
	Start   *float64 `json:"start"`
	Current *float64 `json:"current"`
	Target  *float64 `json:"target"`
	Change  float64  `json:"change"`
}

// ComputeWeightProgress reports first and latest weight; Change stays 0 until
// there are at least two weigh-ins.
func ComputeWeightProgress(logs []domain.PhysiqueLog, target *float64) WeightProgress {
	sorted := sortedPhysique(logs)
	wp := WeightProgress{Target: target}
	if len(sorted) == 0 {
		return wp
	}
	first, last := sorted[0].Weight, sorted[len(sorted)-1].Weight
	wp.Start, wp.Current = &first, &last
	if len(sorted) >= 2 {
		wp.Change = round1(last - first)
	}
	return wp
}

// WeeklyAverage is the mean weight of one challenge week.
type WeeklyAverage struct {
	Week          int     `json:"week"`
	AverageWeight float64 `json:"averageWeight"`
}

// PhysiqueProgress summarises the physique timeline.
type PhysiqueProgress struct {
	StartWeight        *float64        `json:"startWeight"`
	CurrentWeight      *float64        `json:"currentWeight"`
	TargetWeight       *float64        `json:"targetWeight"`
	TotalChange        float64         `json:"totalChange"`
	WeeklyAverage      []WeeklyAverage `json:"weeklyAverage"`
	ProgressPercentage int             `json:"progressPercentage"`
}

// ComputePhysiqueProgress derives start/current weight, weekly averages and
// progress toward the target (capped at 100).
func ComputePhysiqueProgress(logs []domain.PhysiqueLog, target *float64) PhysiqueProgress {
	pp := PhysiqueProgress{TargetWeight: target, WeeklyAverage: []WeeklyAverage{}}
	sorted := sortedPhysique(logs)
	if len(sorted) == 0 {
		return pp
	}
	start, current := sorted[0].Weight, sorted[len(sorted)-1].Weight
	pp.StartWeight, pp.CurrentWeight = &start, &current
	pp.TotalChange = round1(current - start)

	type acc struct {
		total float64
		count int
	}
	weeks := make(map[int]*acc)
	for _, p := range sorted {
		a, ok := weeks[p.WeekNumber]
		if !ok {
			a = &acc{}
			weeks[p.WeekNumber] = a
		}
		a.total += p.Weight
		a.count++
	}
	for week, a := range weeks {
		pp.WeeklyAverage = append(pp.WeeklyAverage, WeeklyAverage{Week: week, AverageWeight: round1(a.total / float64(a.count))})
	}
	sort.Slice(pp.WeeklyAverage, func(i, j int) bool { return pp.WeeklyAverage[i].Week < pp.WeeklyAverage[j].Week })

	if target != nil && *target != start {
		required := math.Abs(*target - start)
		achieved := math.Abs(current - start)
		pp.ProgressPercentage = min(100, int(roundHalfUp(achieved/required*100)))
	}
	return pp
}

func sortedPhysique(logs []domain.PhysiqueLog) []*domain.PhysiqueLog {
	out := make([]*domain.PhysiqueLog, len(logs))
	for i := range logs {
		out[i] = &logs[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
