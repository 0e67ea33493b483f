package handler

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "mandi/internal/domain/errors"
	mockrepo "mandi/internal/mocks/repository"
	mockusecase "mandi/internal/mocks/usecase"
	"mandi/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder_EmptyBody(t *testing.T) {
	orderRepo := mockrepo.NewMockOrderRepository(t)
	wallet := mockusecase.NewMockWalletUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewOrderHandler(impl.NewOrderService(orderRepo, wallet, logger), logger)

	// An empty request body must surface as a missing-fields failure,
	// not a runtime crash, and nothing may be persisted.
	c, _ := newJSONContext(t, "/orders/place-order", "")

	err := handler.PlaceOrder(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMissingFields.ErrorCode(), appErr.ErrorCode())
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
