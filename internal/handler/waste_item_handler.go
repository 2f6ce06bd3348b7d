package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type WasteItemHandler struct {
	svc service.WasteItemService
}

func NewWasteItemHandler(svc service.WasteItemService) *WasteItemHandler {
	return &WasteItemHandler{svc: svc}
}

type WasteItemResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	BinType              string `json:"binType"`
	DisposalInstructions string `json:"disposalInstructions"`
	Points               int    `json:"points"`
}

func toWasteItemResponse(item *model.WasteItem) WasteItemResponse {
	return WasteItemResponse{
		ID:                   item.ID,
		Name:                 item.Name,
		Category:             string(item.Category),
		BinType:              string(item.BinType),
		DisposalInstructions: item.DisposalInstructions,
		Points:               item.Points,
	}
}

type WasteItemListResponse struct {
	Items      []WasteItemResponse `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

func (h *WasteItemHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}
	items, total, err := h.svc.List(c.Request().Context(), limit, (page-1)*limit, c.QueryParam("search"), c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch waste items"))
	}
	resp := make([]WasteItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toWasteItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, WasteItemListResponse{
		Items:      resp,
		Pagination: NewPagination(page, limit, total),
	})
}

type WasteItemDetailResponse struct {
	WasteItemResponse
	TimesLogged int64 `json:"timesLogged"`
}

func (h *WasteItemHandler) Get(c echo.Context) error {
	item, logged, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "waste item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch waste item"))
	}
	return c.JSON(http.StatusOK, WasteItemDetailResponse{
		WasteItemResponse: toWasteItemResponse(item),
		TimesLogged:       logged,
	})
}

func (h *WasteItemHandler) Search(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.Search(c.Request().Context(), c.Param("query"), limit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	resp := make([]WasteItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toWasteItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"items": resp})
}

type CategoryStatResponse struct {
	Category    string `json:"category"`
	DisplayName string `json:"displayName"`
	ItemCount   int64  `json:"itemCount"`
}

func (h *WasteItemHandler) CategoryStats(c echo.Context) error {
	stats, total, err := h.svc.CategoryStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch category stats"))
	}
	resp := make([]CategoryStatResponse, 0, len(stats))
	for _, st := range stats {
		resp = append(resp, CategoryStatResponse{
			Category:    string(st.Category),
			DisplayName: st.DisplayName,
			ItemCount:   st.Count,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": resp, "totalItems": total})
}
