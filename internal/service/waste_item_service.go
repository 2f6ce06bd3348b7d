package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

// CategoryStat is a catalog category with its item count and display label.
type CategoryStat struct {
	Category    model.WasteCategory
	DisplayName string
	Count       int64
}

type WasteItemService interface {
	List(ctx context.Context, limit, offset int, search string, category string) ([]model.WasteItem, int64, error)
	Get(ctx context.Context, id string) (*model.WasteItem, int64, error)
	Search(ctx context.Context, query string, limit int) ([]model.WasteItem, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, int64, error)
}

type wasteItemService struct {
	repo repository.WasteItemRepository
	logs repository.WasteLogRepository
}

func NewWasteItemService(repo repository.WasteItemRepository, logs repository.WasteLogRepository) WasteItemService {
	return &wasteItemService{repo: repo, logs: logs}
}

func (s *wasteItemService) List(ctx context.Context, limit, offset int, search string, category string) ([]model.WasteItem, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	search = strings.TrimSpace(search)
	var cat model.WasteCategory
	if category != "" {
		category = strings.ToUpper(strings.TrimSpace(category))
		if model.ValidCategory(category) {
			cat = model.WasteCategory(category)
		}
	}
	return s.repo.List(ctx, limit, offset, search, cat)
}

func (s *wasteItemService) Get(ctx context.Context, id string) (*model.WasteItem, int64, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	logged, err := s.logs.CountByItem(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return item, logged, nil
}

func (s *wasteItemService) Search(ctx context.Context, query string, limit int) ([]model.WasteItem, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, errors.New("search query must be at least 2 characters long")
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.Search(ctx, query, limit)
}

func (s *wasteItemService) CategoryStats(ctx context.Context) ([]CategoryStat, int64, error) {
	rows, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	stats := make([]CategoryStat, 0, len(rows))
	for _, row := range rows {
		total += row.Count
		stats = append(stats, CategoryStat{
			Category:    row.Category,
			DisplayName: row.Category.DisplayName(),
			Count:       row.Count,
		})
	}
	return stats, total, nil
}
