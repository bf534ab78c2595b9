package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"alcyxob/challenge75/internal/analytics"
	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SheetProblemList is a sheet's entries grouped by topic, with counts.
type SheetProblemList struct {
	Problems    map[string][]domain.SheetProblem `json:"problems"`
	Stats       analytics.SheetStats             `json:"stats"`
	RawProblems []domain.SheetProblem            `json:"rawProblems"`
}

type SheetProblemInput struct {
	Title       string
	Topic       string
	Difficulty  domain.Difficulty
	ProblemLink string
	ArticleLink string
	YoutubeLink string
	Platform    domain.Platform
	Tags        []string
}

// SheetProblemUpdate carries the editable fields of an entry; nil means unchanged.
type SheetProblemUpdate struct {
	Title       *string
	Topic       *string
	Difficulty  *domain.Difficulty
	ProblemLink *string
	ArticleLink *string
	YoutubeLink *string
	Notes       *string
	Code        *string
	Language    *domain.Language
	Platform    *domain.Platform
	Tags        []string
}

type SheetProblemService interface {
	List(ctx context.Context, userID, sheetID primitive.ObjectID) (*SheetProblemList, error)
	Add(ctx context.Context, userID, sheetID primitive.ObjectID, in SheetProblemInput) (*domain.SheetProblem, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, in SheetProblemUpdate) (*domain.SheetProblem, error)
	UpdateStatus(ctx context.Context, userID, id primitive.ObjectID, status domain.SheetProblemStatus) (*domain.SheetProblem, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

type sheetProblemService struct {
	sheetRepo        repository.SheetRepository
	sheetProblemRepo repository.SheetProblemRepository
	problemRepo      repository.ProblemRepository
	clock            Clock
}

func NewSheetProblemService(
	sheetRepo repository.SheetRepository,
	sheetProblemRepo repository.SheetProblemRepository,
	problemRepo repository.ProblemRepository,
	clock Clock,
) SheetProblemService {
	return &sheetProblemService{
		sheetRepo:        sheetRepo,
		sheetProblemRepo: sheetProblemRepo,
		problemRepo:      problemRepo,
		clock:            clock,
	}
}

func (s *sheetProblemService) List(ctx context.Context, userID, sheetID primitive.ObjectID) (*SheetProblemList, error) {
	if _, err := loadSheet(ctx, s.sheetRepo, sheetID, userID); err != nil {
		return nil, err
	}
	problems, err := s.sheetProblemRepo.ListBySheet(ctx, sheetID, userID)
	if err != nil {
		return nil, err
	}
	return &SheetProblemList{
		Problems:    analytics.GroupByTopic(problems),
		Stats:       analytics.ComputeSheetStats(problems),
		RawProblems: problems,
	}, nil
}

func (s *sheetProblemService) Add(ctx context.Context, userID, sheetID primitive.ObjectID, in SheetProblemInput) (*domain.SheetProblem, error) {
	sheet, err := loadSheet(ctx, s.sheetRepo, sheetID, userID)
	if err != nil {
		return nil, err
	}

	sp := &domain.SheetProblem{
		UserID:      userID,
		SheetID:     sheetID,
		Title:       strings.TrimSpace(in.Title),
		Topic:       strings.TrimSpace(in.Topic),
		Difficulty:  in.Difficulty,
		ProblemLink: in.ProblemLink,
		ArticleLink: in.ArticleLink,
		YoutubeLink: in.YoutubeLink,
		Platform:    in.Platform,
		Tags:        in.Tags,
		Status:      domain.SheetStatusPending,
		Language:    domain.LangCPP,
	}
	if sp.Difficulty == "" {
		sp.Difficulty = domain.DifficultyMedium
	}
	if sp.Platform == "" {
		sp.Platform = domain.PlatformLeetCode
	}
	if err := sp.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	maxOrder, err := s.sheetProblemRepo.MaxOrderInTopic(ctx, sheetID, sp.Topic)
	if err != nil {
		return nil, err
	}
	count, err := s.sheetProblemRepo.CountBySheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	sp.Order = maxOrder + 1
	sp.ProblemNumber = count + 1

	id, err := s.sheetProblemRepo.Create(ctx, sp)
	if err != nil {
		return nil, err
	}
	sp.ID = id

	if err := refreshSheetTotals(ctx, s.sheetRepo, s.sheetProblemRepo, sheet); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *sheetProblemService) Update(ctx context.Context, userID, id primitive.ObjectID, in SheetProblemUpdate) (*domain.SheetProblem, error) {
	sp, err := s.getSheetProblem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		sp.Title = strings.TrimSpace(*in.Title)
	}
	if in.Topic != nil {
		sp.Topic = strings.TrimSpace(*in.Topic)
	}
	if in.Difficulty != nil {
		sp.Difficulty = *in.Difficulty
	}
	if in.ProblemLink != nil {
		sp.ProblemLink = *in.ProblemLink
	}
	if in.ArticleLink != nil {
		sp.ArticleLink = *in.ArticleLink
	}
	if in.YoutubeLink != nil {
		sp.YoutubeLink = *in.YoutubeLink
	}
	if in.Notes != nil {
		sp.Notes = *in.Notes
	}
	if in.Code != nil {
		sp.Code = *in.Code
	}
	if in.Language != nil {
		sp.Language = *in.Language
	}
	if in.Platform != nil {
		sp.Platform = *in.Platform
	}
	if in.Tags != nil {
		sp.Tags = append([]string{}, in.Tags...)
	}
	if err := sp.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.sheetProblemRepo.Update(ctx, sp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetProblemNotFound
		}
		return nil, err
	}

	if sp.Status == domain.SheetStatusSolved || sp.Status == domain.SheetStatusRevision {
		syncProblemLog(ctx, s.problemRepo, sp, s.clock.now())
	}
	s.refreshAfterWrite(ctx, sp)
	return sp, nil
}

func (s *sheetProblemService) UpdateStatus(ctx context.Context, userID, id primitive.ObjectID, status domain.SheetProblemStatus) (*domain.SheetProblem, error) {
	if !status.Valid() {
		return nil, invalidf("status must be one of pending, solved, revision")
	}

	now := s.clock.now()
	var attemptedAt = &now
	if status == domain.SheetStatusPending {
		attemptedAt = nil
	}

	sp, err := s.sheetProblemRepo.UpdateStatus(ctx, id, userID, status, attemptedAt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetProblemNotFound
		}
		return nil, err
	}

	syncProblemLog(ctx, s.problemRepo, sp, now)
	s.refreshAfterWrite(ctx, sp)
	return sp, nil
}

func (s *sheetProblemService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	sp, err := s.sheetProblemRepo.Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSheetProblemNotFound
		}
		return err
	}
	s.refreshAfterWrite(ctx, sp)
	return nil
}

// refreshAfterWrite recounts the sheet of sp once the entry write has been
// committed. A failed recount is logged; the next write corrects it.
func (s *sheetProblemService) refreshAfterWrite(ctx context.Context, sp *domain.SheetProblem) {
	sheet, err := loadSheet(ctx, s.sheetRepo, sp.SheetID, sp.UserID)
	if err == nil {
		err = refreshSheetTotals(ctx, s.sheetRepo, s.sheetProblemRepo, sheet)
	}
	if err != nil {
		log.Printf("WARN: Failed to recount sheet %s after writing sheet problem %s: %v", sp.SheetID.Hex(), sp.ID.Hex(), err)
	}
}

func (s *sheetProblemService) getSheetProblem(ctx context.Context, userID, id primitive.ObjectID) (*domain.SheetProblem, error) {
	sp, err := s.sheetProblemRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetProblemNotFound
		}
		return nil, err
	}
	return sp, nil
}
