package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/ports"
)

type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Ask forwards a question to the assistant. Gateway trouble still yields 200
// with the apology text.
//
// @Summary      Ask the assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      askRequest  true  "Question"
// @Success      200   {object}  askResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/assistant/ask [post]
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	answer, err := h.assistant.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, askResponse{Answer: answer})
}
