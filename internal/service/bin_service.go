package service

import (
	"context"
	"errors"
	"sort"

	"github.com/ecosort/backend/internal/geo"
	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

// Default search radii in kilometers and result cap, per endpoint.
const (
	DefaultListRadiusKm   = 10
	DefaultNearbyRadiusKm = 5
	DefaultNearbyLimit    = 20
)

// BinWithDistance annotates a bin with its distance from a query origin.
type BinWithDistance struct {
	Bin        model.Bin
	DistanceKm float64
}

// BinTypeStats aggregates bin counts for one waste category.
type BinTypeStats struct {
	Type      model.WasteCategory
	Total     int64
	Full      int64
	Available int64
}

type BinService interface {
	List(ctx context.Context, f repository.BinFilter) ([]model.Bin, error)
	// FindNearby filters bins to those within radiusKm of the origin,
	// annotates each with its distance, and returns them nearest first.
	// Bins at equal distance keep their input order. A limit of 0 means
	// no truncation. Callers must validate the origin coordinates; an
	// invalid origin belongs on the plain List path instead.
	FindNearby(ctx context.Context, f repository.BinFilter, lat, lng, radiusKm float64, limit int) ([]BinWithDistance, error)
	Get(ctx context.Context, id string) (*model.Bin, error)
	ListByType(ctx context.Context, t model.WasteCategory) ([]model.Bin, error)
	StatsOverview(ctx context.Context) (int64, []BinTypeStats, error)
	// ReportFull marks a bin as full. The flag is one-way; emptying is
	// handled outside this service.
	ReportFull(ctx context.Context, id string) (*model.Bin, error)
}

type binService struct {
	repo repository.BinRepository
}

func NewBinService(repo repository.BinRepository) BinService {
	return &binService{repo: repo}
}

func (s *binService) List(ctx context.Context, f repository.BinFilter) ([]model.Bin, error) {
	return s.repo.List(ctx, f)
}

func (s *binService) FindNearby(ctx context.Context, f repository.BinFilter, lat, lng, radiusKm float64, limit int) ([]BinWithDistance, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	bins, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	nearby := make([]BinWithDistance, 0, len(bins))
	for _, b := range bins {
		d := geo.DistanceKm(lat, lng, b.Latitude, b.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, BinWithDistance{Bin: b, DistanceKm: d})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

func (s *binService) Get(ctx context.Context, id string) (*model.Bin, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *binService) ListByType(ctx context.Context, t model.WasteCategory) ([]model.Bin, error) {
	return s.repo.List(ctx, repository.BinFilter{Type: t})
}

func (s *binService) StatsOverview(ctx context.Context) (int64, []BinTypeStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	rows, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return 0, nil, err
	}
	byType := make(map[model.WasteCategory]*BinTypeStats)
	order := make([]model.WasteCategory, 0, len(rows))
	for _, row := range rows {
		st, ok := byType[row.Type]
		if !ok {
			st = &BinTypeStats{Type: row.Type}
			byType[row.Type] = st
			order = append(order, row.Type)
		}
		st.Total += row.Count
		if row.IsFull {
			st.Full += row.Count
		} else {
			st.Available += row.Count
		}
	}
	stats := make([]BinTypeStats, 0, len(order))
	for _, t := range order {
		stats = append(stats, *byType[t])
	}
	return total, stats, nil
}

func (s *binService) ReportFull(ctx context.Context, id string) (*model.Bin, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.IsFull {
		return nil, ErrBinAlreadyFull
	}
	b.IsFull = true
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
