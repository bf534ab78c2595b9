package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/challenge75/internal/analytics"
	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDailyLogLimit caps List when the caller gives no limit: one full
// challenge.
const DefaultDailyLogLimit = analytics.ChallengeDays

// DailyLogView is a log as returned to the client. IsNew marks an unsaved
// template for a day with no log yet.
type DailyLogView struct {
	domain.DailyLog
	IsNew bool `json:"isNew"`
}

type DailyLogService interface {
	// Save merges patch into the log for date, creating it when absent.
	Save(ctx context.Context, userID primitive.ObjectID, date time.Time, patch *domain.DailyLogPatch) (*domain.DailyLog, error)
	Get(ctx context.Context, userID primitive.ObjectID, date time.Time) (*DailyLogView, error)
	List(ctx context.Context, userID primitive.ObjectID, r repository.DateRange, limit int64) ([]domain.DailyLog, error)
	Delete(ctx context.Context, userID primitive.ObjectID, date time.Time) error
	Streak(ctx context.Context, userID primitive.ObjectID) (analytics.StreakState, error)
	WeeklySummary(ctx context.Context, userID primitive.ObjectID, week int) (analytics.WeekSummary, error)
}

type dailyLogService struct {
	userRepo     repository.UserRepository
	dailyLogRepo repository.DailyLogRepository
	clock        Clock
}

func NewDailyLogService(userRepo repository.UserRepository, dailyLogRepo repository.DailyLogRepository, clock Clock) DailyLogService {
	return &dailyLogService{
		userRepo:     userRepo,
		dailyLogRepo: dailyLogRepo,
		clock:        clock,
	}
}

func (s *dailyLogService) Save(ctx context.Context, userID primitive.ObjectID, date time.Time, patch *domain.DailyLogPatch) (*domain.DailyLog, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	date = domain.Day(date)

	dl, err := s.dailyLogRepo.GetByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		dl = domain.NewDailyLog(userID, date)
	} else if err != nil {
		return nil, err
	}

	patch.Apply(dl)
	dl.DayNumber = analytics.DayNumber(user.StartDate, date)
	if err := dl.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	return s.dailyLogRepo.Upsert(ctx, dl)
}

func (s *dailyLogService) Get(ctx context.Context, userID primitive.ObjectID, date time.Time) (*DailyLogView, error) {
	date = domain.Day(date)
	dl, err := s.dailyLogRepo.GetByUserAndDate(ctx, userID, date)
	if err == nil {
		return &DailyLogView{DailyLog: *dl}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	empty := domain.NewDailyLog(userID, date)
	empty.DayNumber = analytics.DayNumber(user.StartDate, date)
	return &DailyLogView{DailyLog: *empty, IsNew: true}, nil
}

func (s *dailyLogService) List(ctx context.Context, userID primitive.ObjectID, r repository.DateRange, limit int64) ([]domain.DailyLog, error) {
	if limit <= 0 {
		limit = DefaultDailyLogLimit
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return nil, invalidf("endDate must not be before startDate")
	}
	return s.dailyLogRepo.ListByUser(ctx, userID, r, limit)
}

func (s *dailyLogService) Delete(ctx context.Context, userID primitive.ObjectID, date time.Time) error {
	err := s.dailyLogRepo.DeleteByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDailyLogNotFound
	}
	return err
}

func (s *dailyLogService) Streak(ctx context.Context, userID primitive.ObjectID) (analytics.StreakState, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return analytics.StreakState{}, err
	}
	return analytics.ComputeStreak(logs, s.clock.Today()), nil
}

func (s *dailyLogService) WeeklySummary(ctx context.Context, userID primitive.ObjectID, week int) (analytics.WeekSummary, error) {
	if week < 1 {
		return analytics.WeekSummary{}, invalidf("weekNumber must be >= 1")
	}
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return analytics.WeekSummary{}, err
	}

	first, last := analytics.WeekBounds(user.StartDate, week)
	logs, err := s.dailyLogRepo.ListByUserBetween(ctx, userID, first, last)
	if err != nil {
		return analytics.WeekSummary{}, err
	}
	return analytics.WeeklySummary(user.StartDate, week, logs), nil
}

func loadUser(ctx context.Context, repo repository.UserRepository, userID primitive.ObjectID) (*domain.User, error) {
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
