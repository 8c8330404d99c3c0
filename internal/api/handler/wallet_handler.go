package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

type WalletHandler struct {
	ledger ports.LedgerService
}

func NewWalletHandler(ledger ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// Get returns the calling student's balance.
//
// @Summary      Wallet balance
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  walletResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/wallet [get]
func (h *WalletHandler) Get(c echo.Context) error {
	userID, role, err := ctxUser(c)
	if err != nil {
		return err
	}
	if role != domain.RoleStudent {
		return domain.ErrForbidden
	}

	res, err := h.ledger.Wallet(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalletResponse(res))
}

// Recharge credits the fixed recharge amount to the calling student.
//
// @Summary      Recharge wallet
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  walletResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/wallet/recharge [post]
func (h *WalletHandler) Recharge(c echo.Context) error {
	userID, role, err := ctxUser(c)
	if err != nil {
		return err
	}
	if role != domain.RoleStudent {
		return domain.ErrForbidden
	}

	res, err := h.ledger.Recharge(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalletResponse(res))
}
