package handler

import (
	"errors"
	"net/http"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ValuableMaterialHandler struct {
	svc service.ValuableMaterialService
}

func NewValuableMaterialHandler(svc service.ValuableMaterialService) *ValuableMaterialHandler {
	return &ValuableMaterialHandler{svc: svc}
}

type ValuableMaterialResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ValueLevel  string `json:"valueLevel"`
}

func toValuableMaterialResponse(m *model.ValuableMaterial) ValuableMaterialResponse {
	return ValuableMaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ValueLevel:  string(m.ValueLevel),
	}
}

func (h *ValuableMaterialHandler) List(c echo.Context) error {
	materials, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch valuable materials"))
	}
	resp := make([]ValuableMaterialResponse, 0, len(materials))
	for i := range materials {
		resp = append(resp, toValuableMaterialResponse(&materials[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"materials": resp})
}

func (h *ValuableMaterialHandler) Get(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "valuable material not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch valuable material"))
	}
	return c.JSON(http.StatusOK, toValuableMaterialResponse(m))
}
