package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

type ItemActivityResponse struct {
	WasteItemID string `json:"wasteItemId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Logs        int64  `json:"logs"`
}

type DashboardMetricsResponse struct {
	WasteLogsToday int64                  `json:"wasteLogsToday"`
	FullBins       int64                  `json:"fullBins"`
	TotalUsers     int64                  `json:"totalUsers"`
	PointsToday    int64                  `json:"pointsToday"`
	ItemActivity   []ItemActivityResponse `json:"itemActivity"`
}

func (h *DashboardHandler) Metrics(c echo.Context) error {
	m, err := h.svc.Metrics(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch dashboard metrics"))
	}
	activity := make([]ItemActivityResponse, 0, len(m.ItemActivity))
	for _, row := range m.ItemActivity {
		activity = append(activity, ItemActivityResponse{
			WasteItemID: row.WasteItemID,
			Name:        row.Name,
			Category:    string(row.Category),
			Logs:        row.Logs,
		})
	}
	return c.JSON(http.StatusOK, DashboardMetricsResponse{
		WasteLogsToday: m.WasteLogsToday,
		FullBins:       m.FullBins,
		TotalUsers:     m.TotalUsers,
		PointsToday:    m.PointsToday,
		ItemActivity:   activity,
	})
}

func (h *DashboardHandler) BinStatus(c echo.Context) error {
	bins, err := h.svc.BinStatus(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bin status"))
	}
	resp := make([]BinResponse, 0, len(bins))
	for i := range bins {
		resp = append(resp, toBinResponse(&bins[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"bins": resp, "count": len(resp)})
}

type FeedEntryResponse struct {
	ID        string             `json:"id"`
	UserName  string             `json:"userName"`
	Quantity  int                `json:"quantity"`
	Points    int                `json:"pointsAwarded"`
	CreatedAt string             `json:"createdAt"`
	Item      *WasteItemResponse `json:"item,omitempty"`
}

func (h *DashboardHandler) WasteFeed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	feed, err := h.svc.WasteFeed(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch waste feed"))
	}
	resp := make([]FeedEntryResponse, 0, len(feed))
	for _, fe := range feed {
		entry := FeedEntryResponse{
			ID:        fe.Log.ID,
			UserName:  fe.UserName,
			Quantity:  fe.Log.Quantity,
			Points:    fe.Log.Points,
			CreatedAt: fe.Log.CreatedAt.Format(time.RFC3339),
		}
		if fe.Item != nil {
			ir := toWasteItemResponse(fe.Item)
			entry.Item = &ir
		}
		resp = append(resp, entry)
	}
	return c.JSON(http.StatusOK, map[string]any{"feed": resp})
}
