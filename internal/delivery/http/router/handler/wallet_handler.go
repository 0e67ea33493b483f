package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplyCreditPointsRequest carries the number of points to redeem.
type ApplyCreditPointsRequest struct {
	PointsToUse int `json:"pointsToUse"`
}

// WalletHandler holds dependencies for credit-wallet handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWallet handles the wallet snapshot request.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	buyerID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer id")
	}

	output, err := h.uc.GetWallet(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Wallet retrieved successfully")
}

// ApplyCreditPoints handles point redemption against a payment.
func (h *WalletHandler) ApplyCreditPoints(c echo.Context) error {
	buyerID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer id")
	}

	var req ApplyCreditPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	output, err := h.uc.RedeemPoints(c.Request().Context(), buyerID, req.PointsToUse)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Credit points applied successfully")
}
