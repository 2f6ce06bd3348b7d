package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

type fakeBinRepo struct {
	bins    []model.Bin
	updates int
}

func (f *fakeBinRepo) Create(ctx context.Context, b *model.Bin) error {
	f.bins = append(f.bins, *b)
	return nil
}

func (f *fakeBinRepo) FindByID(ctx context.Context, id string) (*model.Bin, error) {
	for i := range f.bins {
		if f.bins[i].ID == id {
			b := f.bins[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBinRepo) List(ctx context.Context, filter repository.BinFilter) ([]model.Bin, error) {
	var out []model.Bin
	for _, b := range f.bins {
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		if filter.IsFull != nil && b.IsFull != *filter.IsFull {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBinRepo) Update(ctx context.Context, b *model.Bin) error {
	f.updates++
	for i := range f.bins {
		if f.bins[i].ID == b.ID {
			f.bins[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBinRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bins)), nil
}

func (f *fakeBinRepo) CountFull(ctx context.Context) (int64, error) {
	var n int64
	for _, b := range f.bins {
		if b.IsFull {
			n++
		}
	}
	return n, nil
}

func (f *fakeBinRepo) StatusCounts(ctx context.Context) ([]repository.BinStatusCount, error) {
	return nil, nil
}

// Bins around the Main Gate origin (12.9716, 77.5946): two within a few tens
// of meters, one across town, one on the other side of the planet.
func newBinFixture() (*fakeBinRepo, BinService) {
	repo := &fakeBinRepo{bins: []model.Bin{
		{ID: "bin-far", Name: "Airport Dry Waste", Latitude: 13.1986, Longitude: 77.7066, Type: model.CategoryDry},
		{ID: "bin-gate", Name: "Main Gate Wet Waste", Latitude: 12.9716, Longitude: 77.5946, Type: model.CategoryWet},
		{ID: "bin-cafe", Name: "Cafeteria Dry Waste", Latitude: 12.9720, Longitude: 77.5951, Type: model.CategoryDry},
		{ID: "bin-remote", Name: "Antipode Bin", Latitude: -12.9716, Longitude: -102.4054, Type: model.CategoryWet},
	}}
	return repo, NewBinService(repo)
}

func TestFindNearbyFiltersAndSortsAscending(t *testing.T) {
	_, svc := newBinFixture()

	nearby, err := svc.FindNearby(context.Background(), repository.BinFilter{}, 12.9716, 77.5946, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(nearby) != 2 {
		t.Fatalf("got %d bins, want 2", len(nearby))
	}
	if nearby[0].Bin.ID != "bin-gate" || nearby[1].Bin.ID != "bin-cafe" {
		t.Fatalf("wrong order: %s, %s", nearby[0].Bin.ID, nearby[1].Bin.ID)
	}
	if nearby[0].DistanceKm > nearby[1].DistanceKm {
		t.Fatalf("distances not ascending: %v > %v", nearby[0].DistanceKm, nearby[1].DistanceKm)
	}
}

func TestFindNearbyRespectsLimit(t *testing.T) {
	_, svc := newBinFixture()

	nearby, err := svc.FindNearby(context.Background(), repository.BinFilter{}, 12.9716, 77.5946, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(nearby) != 1 {
		t.Fatalf("got %d bins, want 1", len(nearby))
	}
	if nearby[0].Bin.ID != "bin-gate" {
		t.Fatalf("limit dropped the nearest bin, got %s", nearby[0].Bin.ID)
	}
}

func TestFindNearbyWideRadiusIncludesAll(t *testing.T) {
	_, svc := newBinFixture()

	nearby, err := svc.FindNearby(context.Background(), repository.BinFilter{}, 12.9716, 77.5946, 25000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(nearby) != 4 {
		t.Fatalf("got %d bins, want 4", len(nearby))
	}
	for i := 1; i < len(nearby); i++ {
		if nearby[i-1].DistanceKm > nearby[i].DistanceKm {
			t.Fatalf("not sorted at index %d: %v > %v", i, nearby[i-1].DistanceKm, nearby[i].DistanceKm)
		}
	}
}

func TestFindNearbyTypeFilter(t *testing.T) {
	_, svc := newBinFixture()

	nearby, err := svc.FindNearby(context.Background(), repository.BinFilter{Type: model.CategoryDry}, 12.9716, 77.5946, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(nearby) != 1 || nearby[0].Bin.ID != "bin-cafe" {
		t.Fatalf("type filter failed: %+v", nearby)
	}
}

func TestReportFullIsOneWay(t *testing.T) {
	repo, svc := newBinFixture()
	ctx := context.Background()

	b, err := svc.ReportFull(ctx, "bin-gate")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsFull {
		t.Fatal("bin not marked full")
	}
	if repo.updates != 1 {
		t.Fatalf("updates=%d want 1", repo.updates)
	}

	if _, err := svc.ReportFull(ctx, "bin-gate"); !errors.Is(err, ErrBinAlreadyFull) {
		t.Fatalf("expected ErrBinAlreadyFull, got %v", err)
	}
	if repo.updates != 1 {
		t.Fatalf("second report wrote: updates=%d", repo.updates)
	}
}

func TestReportFullUnknownBin(t *testing.T) {
	_, svc := newBinFixture()
	if _, err := svc.ReportFull(context.Background(), "no-such-bin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
