package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

type PreferenceHandler struct {
	prefs ports.PreferenceService
}

func NewPreferenceHandler(prefs ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// GetTheme handles GET /v1/preferences/theme.
//
// @Summary      Get theme
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /v1/preferences/theme [get]
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	theme, err := h.prefs.Theme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: string(theme)})
}

// SetTheme handles PUT /v1/preferences/theme.
//
// @Summary      Set theme
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      themeRequest  true  "dark or light"
// @Success      200   {object}  themeResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/preferences/theme [put]
func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	theme := domain.Theme(req.Theme)
	if err := h.prefs.SetTheme(c.Request().Context(), theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: string(theme)})
}
