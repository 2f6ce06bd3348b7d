package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type fakeBinService struct {
	listCalls   int
	nearbyCalls int
	lastRadius  float64
	lastLimit   int
}

func (f *fakeBinService) List(ctx context.Context, filter repository.BinFilter) ([]model.Bin, error) {
	f.listCalls++
	return []model.Bin{{ID: "bin-1", Name: "Main Gate Wet Waste", Type: model.CategoryWet}}, nil
}

func (f *fakeBinService) FindNearby(ctx context.Context, filter repository.BinFilter, lat, lng, radiusKm float64, limit int) ([]service.BinWithDistance, error) {
	f.nearbyCalls++
	f.lastRadius = radiusKm
	f.lastLimit = limit
	return []service.BinWithDistance{
		{Bin: model.Bin{ID: "bin-1", Name: "Main Gate Wet Waste", Type: model.CategoryWet}, DistanceKm: 0.01},
	}, nil
}

func (f *fakeBinService) Get(ctx context.Context, id string) (*model.Bin, error) {
	return nil, service.ErrNotFound
}

func (f *fakeBinService) ListByType(ctx context.Context, t model.WasteCategory) ([]model.Bin, error) {
	return nil, nil
}

func (f *fakeBinService) StatsOverview(ctx context.Context) (int64, []service.BinTypeStats, error) {
	return 0, nil, nil
}

func (f *fakeBinService) ReportFull(ctx context.Context, id string) (*model.Bin, error) {
	return nil, service.ErrNotFound
}

func TestBinListUsesProximityWhenOriginValid(t *testing.T) {
	svc := &fakeBinService{}
	h := NewBinHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/bins?lat=12.9716&lng=77.5946", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rec.Code)
	}
	if svc.nearbyCalls != 1 || svc.listCalls != 0 {
		t.Fatalf("nearby=%d list=%d, want proximity path", svc.nearbyCalls, svc.listCalls)
	}
	if svc.lastRadius != service.DefaultListRadiusKm {
		t.Fatalf("radius=%v want default %v", svc.lastRadius, service.DefaultListRadiusKm)
	}

	var body struct {
		Bins []BinResponse `json:"bins"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Bins) != 1 || body.Bins[0].DistanceKm == nil {
		t.Fatalf("expected distance-annotated bin, got %+v", body.Bins)
	}
}

func TestBinListFallsBackOnInvalidOrigin(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no origin", ""},
		{"unparsable", "?lat=abc&lng=77.5946"},
		{"out of range lat", "?lat=91&lng=77.5946"},
		{"out of range lng", "?lat=12.9716&lng=181"},
		{"missing lng", "?lat=12.9716"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBinService{}
			h := NewBinHandler(svc)
			e := echo.New()

			req := httptest.NewRequest(http.MethodGet, "/api/bins"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.List(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status=%d want 200", rec.Code)
			}
			if svc.listCalls != 1 || svc.nearbyCalls != 0 {
				t.Fatalf("list=%d nearby=%d, want plain list path", svc.listCalls, svc.nearbyCalls)
			}
		})
	}
}

func TestBinNearbyRejectsInvalidCoordinates(t *testing.T) {
	svc := &fakeBinService{}
	h := NewBinHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bins/nearby/:lat/:lng")
	c.SetParamNames("lat", "lng")
	c.SetParamValues("91.5", "77.5946")

	if err := h.Nearby(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", rec.Code)
	}
	if svc.nearbyCalls != 0 {
		t.Fatal("service called despite invalid coordinates")
	}
}

func TestBinNearbyDefaults(t *testing.T) {
	svc := &fakeBinService{}
	h := NewBinHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bins/nearby/:lat/:lng")
	c.SetParamNames("lat", "lng")
	c.SetParamValues("12.9716", "77.5946")

	if err := h.Nearby(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rec.Code)
	}
	if svc.lastRadius != service.DefaultNearbyRadiusKm {
		t.Fatalf("radius=%v want %v", svc.lastRadius, service.DefaultNearbyRadiusKm)
	}
	if svc.lastLimit != service.DefaultNearbyLimit {
		t.Fatalf("limit=%d want %d", svc.lastLimit, service.DefaultNearbyLimit)
	}
}
