package service

import (
	"context"

	"ai-support-be/internal/dto"
	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/support/dashboard"
)

const dashboardFeedPerPage = 20

type IDashboardService interface {
	GetDashboard(ctx context.Context, page int) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		aggregator: dashboard.NewAggregator(log),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, page int) (*dto.DashboardResponse, error) {
	if page < 1 {
		page = 1
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := s.aggregator.GetStats(ctx, uow)
	if err != nil {
		return nil, err
	}

	feed, err := s.aggregator.GetRecentFeedback(ctx, uow, dashboardFeedPerPage, (page-1)*dashboardFeedPerPage)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats:          stats,
		RecentFeedback: feed,
		Page:           page,
		PerPage:        dashboardFeedPerPage,
	}, nil
}
