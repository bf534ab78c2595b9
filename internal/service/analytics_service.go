package service

import (
	"context"

	"alcyxob/challenge75/internal/analytics"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsService loads a user's history and hands it to the analytics
// engine. It never writes.
type AnalyticsService interface {
	Dashboard(ctx context.Context, userID primitive.ObjectID) (analytics.Dashboard, error)
	ProblemsTrend(ctx context.Context, userID primitive.ObjectID) ([]analytics.TrendPoint, error)
	PlatformDistribution(ctx context.Context, userID primitive.ObjectID) ([]analytics.PlatformShare, error)
	DifficultyBreakdown(ctx context.Context, userID primitive.ObjectID) ([]analytics.DifficultyShare, error)
	Heatmap(ctx context.Context, userID primitive.ObjectID) ([]analytics.HeatmapCell, error)
	CodeforcesRating(ctx context.Context, userID primitive.ObjectID) ([]analytics.RatingPoint, error)
	WeightProgress(ctx context.Context, userID primitive.ObjectID) ([]analytics.WeightPoint, error)
}

type analyticsService struct {
	userRepo     repository.UserRepository
	dailyLogRepo repository.DailyLogRepository
	physiqueRepo repository.PhysiqueLogRepository
	clock        Clock
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	dailyLogRepo repository.DailyLogRepository,
	physiqueRepo repository.PhysiqueLogRepository,
	clock Clock,
) AnalyticsService {
	return &analyticsService{
		userRepo:     userRepo,
		dailyLogRepo: dailyLogRepo,
		physiqueRepo: physiqueRepo,
		clock:        clock,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID primitive.ObjectID) (analytics.Dashboard, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	physique, err := s.physiqueRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	return analytics.BuildDashboard(user, logs, physique, s.clock.Today()), nil
}

func (s *analyticsService) ProblemsTrend(ctx context.Context, userID primitive.ObjectID) ([]analytics.TrendPoint, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CumulativeTrend(logs), nil
}

func (s *analyticsService) PlatformDistribution(ctx context.Context, userID primitive.ObjectID) ([]analytics.PlatformShare, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.PlatformDistribution(logs), nil
}

func (s *analyticsService) DifficultyBreakdown(ctx context.Context, userID primitive.ObjectID) ([]analytics.DifficultyShare, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.DifficultyBreakdown(logs), nil
}

func (s *analyticsService) Heatmap(ctx context.Context, userID primitive.ObjectID) ([]analytics.HeatmapCell, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Heatmap(logs), nil
}

func (s *analyticsService) CodeforcesRating(ctx context.Context, userID primitive.ObjectID) ([]analytics.RatingPoint, error) {
	logs, err := s.dailyLogRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.RatingHistory(logs), nil
}

func (s *analyticsService) WeightProgress(ctx context.Context, userID primitive.ObjectID) ([]analytics.WeightPoint, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	physique, err := s.physiqueRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return analytics.WeightSeries(physique, user.TargetWeight), nil
}
