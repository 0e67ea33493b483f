package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/entity"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateOrderStatusRequest carries the requested lifecycle state.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the order placement request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	// Bind by value so an empty body becomes a zero input that fails the
	// required-field checks instead of a nil dereference.
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := echo.Map{
		"order":                    output.Order,
		"ecoFriendlyPointsAwarded": output.Reward.PointsAwarded,
	}
	if output.Reward.Wallet != nil {
		payload["creditWallet"] = output.Reward.Wallet
	}

	message := "Order placed successfully"
	if output.Reward.Failed {
		message = "Order placed, but eco points could not be credited"
	}

	return response.Success(c, http.StatusCreated, payload, message)
}

// CancelOrder handles the order cancellation request.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// UpdateOrderStatus handles the order lifecycle transition request.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// GetBuyerOrders lists a buyer's orders, newest first.
func (h *OrderHandler) GetBuyerOrders(c echo.Context) error {
	buyerID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer id")
	}

	orders, err := h.uc.GetBuyerOrders(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetSellerOrders lists a seller's incoming orders, newest first.
func (h *OrderHandler) GetSellerOrders(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	orders, err := h.uc.GetSellerOrders(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
