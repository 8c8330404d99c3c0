package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// ChannelHandler serves the channel catalog and subscriptions.
type ChannelHandler struct {
	catalog ports.CatalogService
	ledger  ports.LedgerService
}

func NewChannelHandler(catalog ports.CatalogService, ledger ports.LedgerService) *ChannelHandler {
	return &ChannelHandler{catalog: catalog, ledger: ledger}
}

// List handles GET /v1/channels.
//
// @Summary      List channels
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  channelListResponse
// @Router       /v1/channels [get]
func (h *ChannelHandler) List(c echo.Context) error {
	channels, err := h.catalog.ListChannels(c.Request().Context())
	if err != nil {
		return err
	}

	resp := channelListResponse{Channels: make([]channelResponse, 0, len(channels))}
	for i := range channels {
		resp.Channels = append(resp.Channels, toChannelResponse(&channels[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/channels/:id.
//
// @Summary      Get a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Channel id"
// @Success      200  {object}  channelResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/channels/{id} [get]
func (h *ChannelHandler) Get(c echo.Context) error {
	ch, err := h.catalog.GetChannel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toChannelResponse(ch))
}

// Create handles POST /v1/channels. Only approved professors may create.
//
// @Summary      Create a channel
// @Tags         channels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChannelRequest  true  "Channel details"
// @Success      201   {object}  channelResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/channels [post]
func (h *ChannelHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createChannelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ch, err := h.catalog.CreateChannel(c.Request().Context(), ports.CreateChannelInput{
		ProfessorID: userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toChannelResponse(ch))
}

// Subscribe handles POST /v1/channels/:id/subscribe for the calling student.
//
// @Summary      Subscribe to a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replays with the same key are not charged again"
// @Param        id               path      string  true   "Channel id"
// @Success      200              {object}  walletResponse
// @Failure      400              {object}  errorResponse
// @Failure      402              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/channels/{id}/subscribe [post]
func (h *ChannelHandler) Subscribe(c echo.Context) error {
	userID, role, err := ctxUser(c)
	if err != nil {
		return err
	}
	if role != domain.RoleStudent {
		return domain.ErrForbidden
	}

	res, err := h.ledger.Subscribe(c.Request().Context(), ports.SubscribeInput{
		StudentID:      userID,
		ChannelID:      c.Param("id"),
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get("Idempotency-Key")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalletResponse(res))
}
