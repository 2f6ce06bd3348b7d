package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ScrapPriceHandler struct {
	svc service.ScrapPriceService
}

func NewScrapPriceHandler(svc service.ScrapPriceService) *ScrapPriceHandler {
	return &ScrapPriceHandler{svc: svc}
}

type ScrapPriceResponse struct {
	ID           string  `json:"id"`
	MaterialName string  `json:"materialName"`
	PricePerKg   float64 `json:"pricePerKg"`
	UpdatedAt    string  `json:"updatedAt"`
}

func toScrapPriceResponse(p *model.ScrapPrice) ScrapPriceResponse {
	return ScrapPriceResponse{
		ID:           p.ID,
		MaterialName: p.MaterialName,
		PricePerKg:   p.PricePerKg,
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *ScrapPriceHandler) List(c echo.Context) error {
	prices, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch scrap prices"))
	}
	resp := make([]ScrapPriceResponse, 0, len(prices))
	for i := range prices {
		resp = append(resp, toScrapPriceResponse(&prices[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"prices": resp})
}

func (h *ScrapPriceHandler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "scrap price not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch scrap price"))
	}
	return c.JSON(http.StatusOK, toScrapPriceResponse(p))
}

type UpdateScrapPriceRequest struct {
	PricePerKg float64 `json:"pricePerKg"`
}

func (h *ScrapPriceHandler) Update(c echo.Context) error {
	var req UpdateScrapPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.UpdatePrice(c.Request().Context(), c.Param("id"), req.PricePerKg)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "scrap price not found"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusOK, toScrapPriceResponse(p))
}
