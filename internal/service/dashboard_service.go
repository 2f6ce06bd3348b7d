package service

import (
	"context"
	"time"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
)

// DashboardMetrics holds today's activity counters for the admin dashboard.
type DashboardMetrics struct {
	WasteLogsToday int64
	FullBins       int64
	TotalUsers     int64
	PointsToday    int64
	ItemActivity   []repository.ItemActivity
}

// FeedEntry is one row of the recent-disposals feed.
type FeedEntry struct {
	Log      model.WasteLog
	UserName string
	Item     *model.WasteItem
}

type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	BinStatus(ctx context.Context) ([]model.Bin, error)
	WasteFeed(ctx context.Context, limit int) ([]FeedEntry, error)
}

type dashboardService struct {
	logs  repository.WasteLogRepository
	bins  repository.BinRepository
	users repository.UserRepository
	items repository.WasteItemRepository
}

func NewDashboardService(logs repository.WasteLogRepository, bins repository.BinRepository, users repository.UserRepository, items repository.WasteItemRepository) DashboardService {
	return &dashboardService{logs: logs, bins: bins, users: users, items: items}
}

func (s *dashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	logsToday, err := s.logs.CountBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}
	fullBins, err := s.bins.CountFull(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	pointsToday, err := s.logs.SumPointsBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}
	activity, err := s.logs.ItemActivityBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}
	return &DashboardMetrics{
		WasteLogsToday: logsToday,
		FullBins:       fullBins,
		TotalUsers:     totalUsers,
		PointsToday:    pointsToday,
		ItemActivity:   activity,
	}, nil
}

func (s *dashboardService) BinStatus(ctx context.Context) ([]model.Bin, error) {
	return s.bins.List(ctx, repository.BinFilter{})
}

func (s *dashboardService) WasteFeed(ctx context.Context, limit int) ([]FeedEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := s.logs.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	feed := make([]FeedEntry, 0, len(entries))
	for _, e := range entries {
		fe := FeedEntry{Log: e}
		if u, err := s.users.FindByID(ctx, e.UserID); err == nil {
			fe.UserName = u.Name
		}
		fe.Item, _ = s.items.FindByID(ctx, e.WasteItemID)
		feed = append(feed, fe)
	}
	return feed, nil
}
