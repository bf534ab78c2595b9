package service

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sheetTotals picks the sheet counters: the recount of its sheet problems when
// it has any, otherwise the sum of its topic counters (a sheet tracked only
// at topic level).
func sheetTotals(sheet *domain.Sheet, count repository.StatusCount) (total, solved int) {
	if count.Total > 0 {
		return count.Total, count.Solved
	}
	for _, t := range sheet.Topics {
		total += t.TotalProblems
		solved += t.SolvedProblems
	}
	return total, solved
}

// refreshSheetTotals recomputes and stores the counters of sheet. Every write
// touching a sheet or its problems ends here; counters are never patched
// incrementally.
func refreshSheetTotals(ctx context.Context, sheets repository.SheetRepository, sheetProblems repository.SheetProblemRepository, sheet *domain.Sheet) error {
	count, err := sheetProblems.CountStatusBySheet(ctx, sheet.ID)
	if err != nil {
		return err
	}
	sheet.TotalProblems, sheet.SolvedProblems = sheetTotals(sheet, count)
	return sheets.SetTotals(ctx, sheet.ID, sheet.TotalProblems, sheet.SolvedProblems)
}

func loadSheet(ctx context.Context, sheets repository.SheetRepository, id, userID primitive.ObjectID) (*domain.Sheet, error) {
	sheet, err := sheets.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}
	return sheet, nil
}

var sheetToProblemStatus = map[domain.SheetProblemStatus]domain.ProblemStatus{
	domain.SheetStatusSolved:   domain.ProblemSolved,
	domain.SheetStatusRevision: domain.ProblemRevisit,
}

// problemFromSheetProblem builds the problem-log mirror of a solved or
// revision sheet entry.
func problemFromSheetProblem(sp *domain.SheetProblem, status domain.ProblemStatus, now time.Time) *domain.Problem {
	sheetID := sp.SheetID
	spID := sp.ID
	p := &domain.Problem{
		UserID:         sp.UserID,
		Title:          sp.Title,
		Link:           sp.ProblemLink,
		Platform:       sp.Platform,
		Difficulty:     sp.Difficulty,
		Status:         status,
		Tags:           append([]string{}, sp.Tags...),
		SheetID:        &sheetID,
		SheetTopic:     sp.Topic,
		SheetProblemID: &spID,
		Notes:          sp.Notes,
		Code:           sp.Code,
		Language:       sp.Language,
		SolvedAt:       now,
	}
	// The problem log has no InterviewBit platform.
	if p.Platform == "" || p.Platform == domain.PlatformInterviewBit {
		p.Platform = domain.PlatformOther
	}
	if p.Difficulty == "" {
		p.Difficulty = domain.DifficultyUnknown
	}
	if p.Language == "" {
		p.Language = domain.LangCPP
	}
	if sp.LastAttemptedAt != nil {
		p.SolvedAt = *sp.LastAttemptedAt
	}
	return p
}

// syncProblemLog mirrors a sheet entry's status into the problem log:
// solved and revision upsert the linked problem, pending removes it.
// Failures are logged and swallowed; the sheet write has already succeeded.
func syncProblemLog(ctx context.Context, problems repository.ProblemRepository, sp *domain.SheetProblem, now time.Time) {
	var err error
	if status, ok := sheetToProblemStatus[sp.Status]; ok {
		err = problems.UpsertForSheetProblem(ctx, problemFromSheetProblem(sp, status, now))
	} else {
		err = problems.DeleteForSheetProblem(ctx, sp.ID, sp.UserID)
	}
	if err != nil {
		log.Printf("WARN: Failed to sync sheet problem %s into problem log: %v", sp.ID.Hex(), err)
	}
}
