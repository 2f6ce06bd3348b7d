package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecosort/backend/internal/geo"
	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BinHandler struct {
	svc service.BinService
}

func NewBinHandler(svc service.BinService) *BinHandler {
	return &BinHandler{svc: svc}
}

type BinResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Type       string   `json:"type"`
	Capacity   int      `json:"capacity"`
	IsFull     bool     `json:"isFull"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func toBinResponse(b *model.Bin) BinResponse {
	return BinResponse{
		ID:        b.ID,
		Name:      b.Name,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Type:      string(b.Type),
		Capacity:  b.Capacity,
		IsFull:    b.IsFull,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func binFilterFromQuery(c echo.Context) repository.BinFilter {
	var f repository.BinFilter
	if t := strings.ToUpper(strings.TrimSpace(c.QueryParam("type"))); model.ValidCategory(t) {
		f.Type = model.WasteCategory(t)
	}
	if v := c.QueryParam("isFull"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsFull = &b
		}
	}
	return f
}

// List returns all matching bins. When the caller supplies a usable origin the
// result is restricted to bins within the radius and sorted nearest first;
// a missing or unparsable origin falls back to the unranked listing.
func (h *BinHandler) List(c echo.Context) error {
	f := binFilterFromQuery(c)
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr == nil && lngErr == nil && geo.IsValidLatLng(lat, lng) {
		radius, err := strconv.ParseFloat(c.QueryParam("radius"), 64)
		if err != nil || radius <= 0 {
			radius = service.DefaultListRadiusKm
		}
		nearby, err := h.svc.FindNearby(c.Request().Context(), f, lat, lng, radius, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bins"))
		}
		resp := make([]BinResponse, 0, len(nearby))
		for i := range nearby {
			r := toBinResponse(&nearby[i].Bin)
			d := nearby[i].DistanceKm
			r.DistanceKm = &d
			resp = append(resp, r)
		}
		return c.JSON(http.StatusOK, map[string]any{"bins": resp, "count": len(resp)})
	}

	bins, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bins"))
	}
	resp := make([]BinResponse, 0, len(bins))
	for i := range bins {
		resp = append(resp, toBinResponse(&bins[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"bins": resp, "count": len(resp)})
}

func (h *BinHandler) Get(c echo.Context) error {
	b, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "bin not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bin"))
	}
	return c.JSON(http.StatusOK, toBinResponse(b))
}

func (h *BinHandler) ListByType(c echo.Context) error {
	t := strings.ToUpper(strings.TrimSpace(c.Param("type")))
	if !model.ValidCategory(t) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid bin type"))
	}
	bins, err := h.svc.ListByType(c.Request().Context(), model.WasteCategory(t))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bins"))
	}
	resp := make([]BinResponse, 0, len(bins))
	for i := range bins {
		resp = append(resp, toBinResponse(&bins[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"bins": resp, "count": len(resp)})
}

func (h *BinHandler) Nearby(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.Param("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Param("lng"), 64)
	if latErr != nil || lngErr != nil || !geo.IsValidLatLng(lat, lng) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid coordinates"))
	}
	radius, err := strconv.ParseFloat(c.QueryParam("radius"), 64)
	if err != nil || radius <= 0 {
		radius = service.DefaultNearbyRadiusKm
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = service.DefaultNearbyLimit
	}
	nearby, err := h.svc.FindNearby(c.Request().Context(), binFilterFromQuery(c), lat, lng, radius, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch nearby bins"))
	}
	resp := make([]BinResponse, 0, len(nearby))
	for i := range nearby {
		r := toBinResponse(&nearby[i].Bin)
		d := nearby[i].DistanceKm
		r.DistanceKm = &d
		resp = append(resp, r)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"bins":     resp,
		"count":    len(resp),
		"radiusKm": radius,
	})
}

type BinTypeStatsResponse struct {
	Type      string `json:"type"`
	Total     int64  `json:"total"`
	Full      int64  `json:"full"`
	Available int64  `json:"available"`
}

func (h *BinHandler) StatsOverview(c echo.Context) error {
	total, stats, err := h.svc.StatsOverview(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bin stats"))
	}
	resp := make([]BinTypeStatsResponse, 0, len(stats))
	for _, st := range stats {
		resp = append(resp, BinTypeStatsResponse{
			Type:      string(st.Type),
			Total:     st.Total,
			Full:      st.Full,
			Available: st.Available,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"totalBins": total, "byType": resp})
}

func (h *BinHandler) ReportFull(c echo.Context) error {
	b, err := h.svc.ReportFull(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "bin not found"))
		case errors.Is(err, service.ErrBinAlreadyFull):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bin_already_full", "bin is already marked as full"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to report bin"))
		}
	}
	return c.JSON(http.StatusOK, toBinResponse(b))
}
