package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type ProfileResponse struct {
	UserResponse
	TotalWasteLogs int64 `json:"totalWasteLogs"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)
	u, logCount, err := h.svc.Get(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch profile"))
	}
	return c.JSON(http.StatusOK, ProfileResponse{UserResponse: toUserResponse(u), TotalWasteLogs: logCount})
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Name == nil && req.Email == nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "nothing to update"))
	}
	u, err := h.svc.UpdateProfile(c.Request().Context(), uid, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("email_taken", "email is already in use"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

type CategoryUsageResponse struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
	Points   int64  `json:"points"`
	Logs     int64  `json:"logs"`
}

type UserStatsResponse struct {
	TotalPoints     int                     `json:"totalPoints"`
	TotalWasteLogs  int64                   `json:"totalWasteLogs"`
	MonthByCategory []CategoryUsageResponse `json:"monthByCategory"`
}

func (h *UserHandler) GetMyStats(c echo.Context) error {
	uid := c.Get("uid").(string)
	stats, err := h.svc.Stats(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch stats"))
	}
	byCategory := make([]CategoryUsageResponse, 0, len(stats.MonthByCategory))
	for _, row := range stats.MonthByCategory {
		byCategory = append(byCategory, CategoryUsageResponse{
			Category: string(row.Category),
			Quantity: row.Quantity,
			Points:   row.Points,
			Logs:     row.Logs,
		})
	}
	return c.JSON(http.StatusOK, UserStatsResponse{
		TotalPoints:     stats.TotalPoints,
		TotalWasteLogs:  stats.TotalWasteLogs,
		MonthByCategory: byCategory,
	})
}

type LeaderboardEntryResponse struct {
	Rank      int    `json:"rank"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	TotalLogs int64  `json:"totalLogs"`
}

func (h *UserHandler) GetLeaderboard(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.svc.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch leaderboard"))
	}
	resp := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LeaderboardEntryResponse{
			Rank:      e.Rank,
			ID:        e.User.ID,
			Name:      e.User.Name,
			Points:    e.User.Points,
			TotalLogs: e.TotalLogs,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"leaderboard": resp})
}
