package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecosort/backend/internal/metrics"
	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type WasteLogHandler struct {
	svc service.WasteLogService
}

func NewWasteLogHandler(svc service.WasteLogService) *WasteLogHandler {
	return &WasteLogHandler{svc: svc}
}

type WasteLogResponse struct {
	ID        string             `json:"id"`
	Quantity  int                `json:"quantity"`
	Points    int                `json:"pointsAwarded"`
	Area      string             `json:"area,omitempty"`
	CreatedAt string             `json:"createdAt"`
	Item      *WasteItemResponse `json:"item,omitempty"`
}

func toWasteLogResponse(entry *model.WasteLog, item *model.WasteItem) WasteLogResponse {
	resp := WasteLogResponse{
		ID:        entry.ID,
		Quantity:  entry.Quantity,
		Points:    entry.Points,
		Area:      entry.Area,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
	if item != nil {
		ir := toWasteItemResponse(item)
		resp.Item = &ir
	}
	return resp
}

type CreateWasteLogRequest struct {
	WasteItemID string `json:"wasteItemId"`
	Quantity    int    `json:"quantity"`
	Area        string `json:"area"`
}

type CreateWasteLogResponse struct {
	Log          WasteLogResponse `json:"log"`
	PointsEarned int              `json:"pointsEarned"`
	NewBalance   int              `json:"newBalance"`
}

func (h *WasteLogHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req CreateWasteLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.WasteItemID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "wasteItemId is required"))
	}
	result, err := h.svc.Log(c.Request().Context(), uid, req.WasteItemID, req.Quantity, strings.TrimSpace(req.Area))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "waste item not found"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	metrics.ObserveWasteLog(result.PointsEarned)
	return c.JSON(http.StatusCreated, CreateWasteLogResponse{
		Log:          toWasteLogResponse(result.Entry, result.Item),
		PointsEarned: result.PointsEarned,
		NewBalance:   result.NewBalance,
	})
}

type WasteLogListResponse struct {
	Logs       []WasteLogResponse `json:"logs"`
	Pagination Pagination         `json:"pagination"`
}

func (h *WasteLogHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 20
	}
	f := repository.WasteLogFilter{Limit: limit, Offset: (page - 1) * limit}
	if cat := strings.ToUpper(strings.TrimSpace(c.QueryParam("category"))); model.ValidCategory(cat) {
		f.Category = model.WasteCategory(cat)
	}
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.Since = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			f.Since = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.Until = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.AddDate(0, 0, 1)
			f.Until = &end
		}
	}
	logs, total, err := h.svc.ListForUser(c.Request().Context(), uid, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch waste logs"))
	}
	resp := make([]WasteLogResponse, 0, len(logs))
	for i := range logs {
		resp = append(resp, toWasteLogResponse(&logs[i].Entry, logs[i].Item))
	}
	return c.JSON(http.StatusOK, WasteLogListResponse{
		Logs:       resp,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *WasteLogHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	entry, err := h.svc.GetForUser(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "waste log not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch waste log"))
	}
	return c.JSON(http.StatusOK, toWasteLogResponse(&entry.Entry, entry.Item))
}

func (h *WasteLogHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	refunded, err := h.svc.Delete(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "waste log not found"))
		case errors.Is(err, service.ErrReversalWindowExpired):
			return c.JSON(http.StatusForbidden, NewErrorResponse("reversal_window_expired", "waste logs can only be deleted within 24 hours of creation"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete waste log"))
		}
	}
	metrics.ObserveRefund(refunded)
	return c.JSON(http.StatusOK, map[string]any{"deleted": true, "pointsRefunded": refunded})
}

type DailyUsageResponse struct {
	Day      string `json:"day"`
	Quantity int64  `json:"quantity"`
	Points   int64  `json:"points"`
	Logs     int64  `json:"logs"`
}

type WasteLogStatsResponse struct {
	PeriodDays int                     `json:"periodDays"`
	ByCategory []CategoryUsageResponse `json:"byCategory"`
	ByDay      []DailyUsageResponse    `json:"byDay"`
}

func (h *WasteLogHandler) StatsOverview(c echo.Context) error {
	uid := c.Get("uid").(string)
	days, _ := strconv.Atoi(c.QueryParam("days"))
	stats, err := h.svc.Stats(c.Request().Context(), uid, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch stats"))
	}
	byCategory := make([]CategoryUsageResponse, 0, len(stats.ByCategory))
	for _, row := range stats.ByCategory {
		byCategory = append(byCategory, CategoryUsageResponse{
			Category: string(row.Category),
			Quantity: row.Quantity,
			Points:   row.Points,
			Logs:     row.Logs,
		})
	}
	byDay := make([]DailyUsageResponse, 0, len(stats.ByDay))
	for _, row := range stats.ByDay {
		byDay = append(byDay, DailyUsageResponse{
			Day:      row.Day,
			Quantity: row.Quantity,
			Points:   row.Points,
			Logs:     row.Logs,
		})
	}
	return c.JSON(http.StatusOK, WasteLogStatsResponse{
		PeriodDays: stats.Days,
		ByCategory: byCategory,
		ByDay:      byDay,
	})
}
