package impl

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	mockrepo "mandi/internal/mocks/repository"
	mockusecase "mandi/internal/mocks/usecase"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *mockrepo.MockOrderRepository, *mockusecase.MockWalletUsecase) {
	orderRepo := mockrepo.NewMockOrderRepository(t)
	wallet := mockusecase.NewMockWalletUsecase(t)

	return NewOrderService(orderRepo, wallet, newDiscardLogger()), orderRepo, wallet
}

func validPlaceOrderInput() *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.New(), Quantity: 2, Unit: "kg"},
		},
		SellerID:        uuid.New(),
		BuyerID:         uuid.New(),
		TotalAmount:     decimal.NewFromInt(120),
		ShippingAddress: "14 MG Road, Pune",
	}
}

func TestPlaceOrder_CreatesPendingOrderAndAwardsPoints(t *testing.T) {
	svc, orderRepo, wallet := newOrderService(t)
	input := validPlaceOrderInput()

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(order *entity.Order) bool {
		return order.Status == entity.OrderStatusPending &&
			order.BuyerID == input.BuyerID &&
			order.SellerID == input.SellerID &&
			len(order.Items) == 1
	})).Return(nil)

	wallet.On("ComputeEcoPoints", mock.Anything, mock.Anything).Return(2, nil)
	wallet.On("AwardPoints", mock.Anything, input.BuyerID, 2).
		Return(&entity.CreditWallet{Points: 2, TotalEarned: 2}, nil)

	out, err := svc.PlaceOrder(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Order.Status)
	assert.False(t, out.Reward.Failed)
	assert.Equal(t, 2, out.Reward.PointsAwarded)
	require.NotNil(t, out.Reward.Wallet)
	assert.Equal(t, 2, out.Reward.Wallet.Points)
}

func TestPlaceOrder_NoEcoItemsMeansNoAward(t *testing.T) {
	svc, orderRepo, wallet := newOrderService(t)
	input := validPlaceOrderInput()

	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	wallet.On("ComputeEcoPoints", mock.Anything, mock.Anything).Return(0, nil)

	out, err := svc.PlaceOrder(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, out.Reward.Failed)
	assert.Equal(t, 0, out.Reward.PointsAwarded)
	assert.Nil(t, out.Reward.Wallet)
	wallet.AssertNotCalled(t, "AwardPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrder_RewardFailureDoesNotFailPlacement(t *testing.T) {
	svc, orderRepo, wallet := newOrderService(t)
	input := validPlaceOrderInput()

	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	wallet.On("ComputeEcoPoints", mock.Anything, mock.Anything).Return(2, nil)
	wallet.On("AwardPoints", mock.Anything, input.BuyerID, 2).
		Return(nil, errors.New("wallet store down"))

	out, err := svc.PlaceOrder(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Order.Status)
	assert.True(t, out.Reward.Failed)
	assert.Equal(t, 0, out.Reward.PointsAwarded)
}

func TestPlaceOrder_RejectsMissingFields(t *testing.T) {
	svc, _, _ := newOrderService(t)

	cases := []struct {
		name   string
		mutate func(*usecase.PlaceOrderInput)
	}{
		{"no items", func(in *usecase.PlaceOrderInput) { in.Items = nil }},
		{"no seller", func(in *usecase.PlaceOrderInput) { in.SellerID = uuid.Nil }},
		{"no buyer", func(in *usecase.PlaceOrderInput) { in.BuyerID = uuid.Nil }},
		{"zero amount", func(in *usecase.PlaceOrderInput) { in.TotalAmount = decimal.Zero }},
		{"no address", func(in *usecase.PlaceOrderInput) { in.ShippingAddress = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPlaceOrderInput()
			tc.mutate(input)

			_, err := svc.PlaceOrder(context.Background(), input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrMissingFields.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestCancelOrder_AllowedFromPendingOnly(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	orderID := uuid.New()

	orderRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, orderID, entity.OrderStatusCancelled).
		Return(nil)

	order, err := svc.CancelOrder(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestCancelOrder_RejectedOnceShipped(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	orderID := uuid.New()

	orderRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil)

	_, err := svc.CancelOrder(context.Background(), orderID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), appErr.ErrorCode())
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatus_AdvancesOneStep(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	orderID := uuid.New()

	orderRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusProcessing}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, orderID, entity.OrderStatusShipped).
		Return(nil)

	order, err := svc.UpdateOrderStatus(context.Background(), orderID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestUpdateOrderStatus_RejectsSkippedStates(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	orderID := uuid.New()

	orderRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), orderID, entity.OrderStatusDelivered)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), appErr.ErrorCode())
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("Lost"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	orderID := uuid.New()

	orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := svc.UpdateOrderStatus(context.Background(), orderID, entity.OrderStatusProcessing)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestGetBuyerOrders(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)
	buyerID := uuid.New()

	expected := []*entity.Order{
		{ID: uuid.New(), BuyerID: buyerID},
		{ID: uuid.New(), BuyerID: buyerID},
	}
	orderRepo.On("FindByBuyer", mock.Anything, buyerID).Return(expected, nil)

	orders, err := svc.GetBuyerOrders(context.Background(), buyerID)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
