package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"alcyxob/challenge75/internal/analytics"
	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultProblemPageSize = 50
	MaxProblemPageSize     = 200
)

type ProblemInput struct {
	Title      string
	Link       string
	Code       string
	Language   domain.Language
	Notes      string
	Platform   domain.Platform
	Difficulty domain.Difficulty
	Status     domain.ProblemStatus
	Tags       []string
	TimeSpent  int
	SolvedAt   *time.Time
	// DailyLogDate links the problem to that day's log and bumps the log's
	// solved counter for Platform.
	DailyLogDate *time.Time
	SheetID      *primitive.ObjectID
	SheetTopic   string
}

// ProblemUpdate carries the editable fields; nil means unchanged.
type ProblemUpdate struct {
	Title      *string
	Link       *string
	Code       *string
	Language   *domain.Language
	Notes      *string
	Platform   *domain.Platform
	Difficulty *domain.Difficulty
	Status     *domain.ProblemStatus
	Tags       []string
	TimeSpent  *int
	SolvedAt   *time.Time
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}

type ProblemPage struct {
	Problems   []domain.Problem `json:"problems"`
	Pagination Pagination       `json:"pagination"`
}

type ProblemService interface {
	Create(ctx context.Context, userID primitive.ObjectID, in ProblemInput) (*domain.Problem, error)
	List(ctx context.Context, userID primitive.ObjectID, f repository.ProblemFilter, page, limit int64) (*ProblemPage, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Problem, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, in ProblemUpdate) (*domain.Problem, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	// ByDate lists problems solved on the given calendar day.
	ByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) ([]domain.Problem, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (analytics.ProblemStats, error)
}

type problemService struct {
	problemRepo  repository.ProblemRepository
	dailyLogRepo repository.DailyLogRepository
	sheetRepo    repository.SheetRepository
	clock        Clock
}

func NewProblemService(
	problemRepo repository.ProblemRepository,
	dailyLogRepo repository.DailyLogRepository,
	sheetRepo repository.SheetRepository,
	clock Clock,
) ProblemService {
	return &problemService{
		problemRepo:  problemRepo,
		dailyLogRepo: dailyLogRepo,
		sheetRepo:    sheetRepo,
		clock:        clock,
	}
}

func (s *problemService) Create(ctx context.Context, userID primitive.ObjectID, in ProblemInput) (*domain.Problem, error) {
	p := &domain.Problem{
		UserID:     userID,
		Title:      strings.TrimSpace(in.Title),
		Link:       strings.TrimSpace(in.Link),
		Code:       in.Code,
		Language:   in.Language,
		Notes:      in.Notes,
		Platform:   in.Platform,
		Difficulty: in.Difficulty,
		Status:     in.Status,
		Tags:       in.Tags,
		TimeSpent:  in.TimeSpent,
		SolvedAt:   s.clock.now().UTC(),
		SheetTopic: in.SheetTopic,
	}
	if p.Language == "" {
		p.Language = domain.LangCPP
	}
	if p.Difficulty == "" {
		p.Difficulty = domain.DifficultyUnknown
	}
	if p.Status == "" {
		p.Status = domain.ProblemSolved
	}
	if p.Platform == "" {
		p.Platform = domain.DetectPlatform(p.Link)
		if p.Platform == domain.PlatformInterviewBit {
			p.Platform = domain.PlatformOther
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if in.SolvedAt != nil {
		p.SolvedAt = in.SolvedAt.UTC()
	}
	if err := p.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if in.SheetID != nil {
		if _, err := loadSheet(ctx, s.sheetRepo, *in.SheetID, userID); err != nil {
			return nil, err
		}
		sheetID := *in.SheetID
		p.SheetID = &sheetID
	}

	id, err := s.problemRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if in.DailyLogDate != nil {
		s.countInDailyLog(ctx, p, *in.DailyLogDate)
	}
	return p, nil
}

// countInDailyLog bumps the day's solved counter for the stored problem p and
// links the two. A missing log leaves p unlinked; other failures are logged
// because the problem itself is already saved.
func (s *problemService) countInDailyLog(ctx context.Context, p *domain.Problem, date time.Time) {
	logID, err := s.dailyLogRepo.IncrementProblemsSolved(ctx, p.UserID, date, p.Platform, 1)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: Failed to count problem %s in daily log of %s: %v", p.ID.Hex(), domain.FormatDay(date), err)
		}
		return
	}
	if err := s.problemRepo.SetDailyLog(ctx, p.ID, p.UserID, logID); err != nil {
		log.Printf("WARN: Failed to link problem %s to daily log %s: %v", p.ID.Hex(), logID.Hex(), err)
		return
	}
	p.DailyLogID = &logID
}

func (s *problemService) List(ctx context.Context, userID primitive.ObjectID, f repository.ProblemFilter, page, limit int64) (*ProblemPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultProblemPageSize
	}
	if limit > MaxProblemPageSize {
		limit = MaxProblemPageSize
	}

	problems, err := s.problemRepo.List(ctx, userID, f, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.problemRepo.Count(ctx, userID, f)
	if err != nil {
		return nil, err
	}

	return &ProblemPage{
		Problems: problems,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Pages: int64(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *problemService) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Problem, error) {
	p, err := s.problemRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *problemService) Update(ctx context.Context, userID, id primitive.ObjectID, in ProblemUpdate) (*domain.Problem, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Link != nil {
		p.Link = strings.TrimSpace(*in.Link)
	}
	if in.Code != nil {
		p.Code = *in.Code
	}
	if in.Language != nil {
		p.Language = *in.Language
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.Platform != nil {
		p.Platform = *in.Platform
	}
	if in.Difficulty != nil {
		p.Difficulty = *in.Difficulty
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Tags != nil {
		p.Tags = append([]string{}, in.Tags...)
	}
	if in.TimeSpent != nil {
		p.TimeSpent = *in.TimeSpent
	}
	if in.SolvedAt != nil {
		p.SolvedAt = in.SolvedAt.UTC()
	}
	if err := p.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.problemRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *problemService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	err := s.problemRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProblemNotFound
	}
	return err
}

func (s *problemService) ByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) ([]domain.Problem, error) {
	from := domain.Day(date)
	return s.problemRepo.ListSolvedBetween(ctx, userID, from, from.AddDate(0, 0, 1))
}

func (s *problemService) Stats(ctx context.Context, userID primitive.ObjectID) (analytics.ProblemStats, error) {
	problems, err := s.problemRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return analytics.ProblemStats{}, err
	}
	return analytics.ComputeProblemStats(problems), nil
}
