package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/ports"
)

type AnnouncementHandler struct {
	catalog ports.CatalogService
}

func NewAnnouncementHandler(catalog ports.CatalogService) *AnnouncementHandler {
	return &AnnouncementHandler{catalog: catalog}
}

// List returns announcements, newest first.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  announcementListResponse
// @Router       /v1/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	ads, err := h.catalog.ListAnnouncements(c.Request().Context())
	if err != nil {
		return err
	}

	resp := announcementListResponse{Announcements: make([]announcementResponse, 0, len(ads))}
	for i := range ads {
		resp.Announcements = append(resp.Announcements, toAnnouncementResponse(&ads[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Publish posts an announcement as the calling professor.
//
// @Summary      Publish an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  announcementResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/announcements [post]
func (h *AnnouncementHandler) Publish(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req publishAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ad, err := h.catalog.PublishAnnouncement(c.Request().Context(), ports.PublishAnnouncementInput{
		ProfessorID: userID,
		Title:       req.Title,
		Content:     req.Content,
		Tag:         req.Tag,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAnnouncementResponse(ad))
}
