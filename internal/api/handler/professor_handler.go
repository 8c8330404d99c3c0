package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/ports"
)

type ProfessorHandler struct {
	catalog ports.CatalogService
}

func NewProfessorHandler(catalog ports.CatalogService) *ProfessorHandler {
	return &ProfessorHandler{catalog: catalog}
}

// Standing returns a professor's tier and aura.
//
// @Summary      Professor standing
// @Tags         professors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Professor id"
// @Success      200  {object}  standingResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/professors/{id}/standing [get]
func (h *ProfessorHandler) Standing(c echo.Context) error {
	st, err := h.catalog.Standing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStandingResponse(st))
}
