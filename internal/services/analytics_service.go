package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/durangezer/portfolio-api/internal/models"
)

const topListLimit = 10

// PageViewRepositoryInterface defines the persistence operations the
// analytics service needs
type PageViewRepositoryInterface interface {
	Record(ctx context.Context, view *models.PageView) error
	TotalViews(ctx context.Context, since time.Time) (int64, error)
	UniqueVisitors(ctx context.Context, since time.Time) (int64, error)
	TopPages(ctx context.Context, since time.Time, limit int) ([]models.PageStats, error)
	TopProjects(ctx context.Context, since time.Time, limit int) ([]models.ProjectStats, error)
}

// AnalyticsService records page views and aggregates viewing statistics
type AnalyticsService struct {
	repo   PageViewRepositoryInterface
	logger *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(repo PageViewRepositoryInterface, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:   repo,
		logger: logger,
	}
}

// RecordPageView stores a single page view
func (s *AnalyticsService) RecordPageView(ctx context.Context, view *models.PageView) error {
	if err := s.repo.Record(ctx, view); err != nil {
		s.logger.Error("failed to record page view", slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}

// Stats aggregates viewing statistics over the last `days` days
func (s *AnalyticsService) Stats(ctx context.Context, days int) (*models.AnalyticsStats, error) {
	since := time.Now().AddDate(0, 0, -days)

	totalViews, err := s.repo.TotalViews(ctx, since)
	if err != nil {
		s.logger.Error("failed to count total views", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	uniqueVisitors, err := s.repo.UniqueVisitors(ctx, since)
	if err != nil {
		s.logger.Error("failed to count unique visitors", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	topPages, err := s.repo.TopPages(ctx, since, topListLimit)
	if err != nil {
		s.logger.Error("failed to aggregate top pages", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	topProjects, err := s.repo.TopProjects(ctx, since, topListLimit)
	if err != nil {
		s.logger.Error("failed to aggregate top projects", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return &models.AnalyticsStats{
		TotalViews:     totalViews,
		UniqueVisitors: uniqueVisitors,
		TopPages:       topPages,
		TopProjects:    topProjects,
		PeriodDays:     days,
	}, nil
}
