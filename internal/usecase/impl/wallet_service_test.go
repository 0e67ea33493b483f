package impl

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	mockrepo "mandi/internal/mocks/repository"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T) (usecase.WalletUsecase, *mockrepo.MockBuyerRepository, *mockrepo.MockProductRepository) {
	buyerRepo := mockrepo.NewMockBuyerRepository(t)
	productRepo := mockrepo.NewMockProductRepository(t)

	return NewWalletService(buyerRepo, productRepo, newDiscardLogger()), buyerRepo, productRepo
}

func TestComputeEcoPoints_PackUnitsAccumulate(t *testing.T) {
	svc, _, productRepo := newWalletService(t)

	bags := &entity.Product{
		ID:            uuid.New(),
		Name:          "reusable bags",
		IsEcoFriendly: true,
		UnitsPerPack:  50,
	}
	productRepo.On("FindByID", mock.Anything, bags.ID).Return(bags, nil)

	// Two packs of 50 units make exactly one point.
	points, err := svc.ComputeEcoPoints(context.Background(), []entity.OrderItem{
		{ProductID: bags.ID, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, points)
}

func TestComputeEcoPoints_RemainderIsDropped(t *testing.T) {
	svc, _, productRepo := newWalletService(t)

	bags := &entity.Product{
		ID:            uuid.New(),
		Name:          "reusable bags",
		IsEcoFriendly: true,
		UnitsPerPack:  50,
	}
	productRepo.On("FindByID", mock.Anything, bags.ID).Return(bags, nil)

	points, err := svc.ComputeEcoPoints(context.Background(), []entity.OrderItem{
		{ProductID: bags.ID, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, points)
}

func TestComputeEcoPoints_MixedItems(t *testing.T) {
	svc, _, productRepo := newWalletService(t)

	straws := &entity.Product{
		ID:            uuid.New(),
		Name:          "bamboo straws",
		IsEcoFriendly: true,
		UnitsPerPack:  100,
	}
	potato := &entity.Product{
		ID:   uuid.New(),
		Name: "potato",
	}
	unknown := uuid.New()

	productRepo.On("FindByID", mock.Anything, straws.ID).Return(straws, nil)
	productRepo.On("FindByID", mock.Anything, potato.ID).Return(potato, nil)
	productRepo.On("FindByID", mock.Anything, unknown).Return(nil, repository.ErrProductNotFound)

	points, err := svc.ComputeEcoPoints(context.Background(), []entity.OrderItem{
		{ProductID: straws.ID, Quantity: 3},
		{ProductID: potato.ID, Quantity: 10},
		{ProductID: unknown, Quantity: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, points)
}

func TestAwardPoints_ZeroIsNoOp(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)

	wallet, err := svc.AwardPoints(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Nil(t, wallet)
	buyerRepo.AssertNotCalled(t, "AwardWalletPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardPoints_CreditsAtomically(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)
	buyerID := uuid.New()

	buyerRepo.On("AwardWalletPoints", mock.Anything, buyerID, 3).
		Return(&entity.CreditWallet{Points: 5, TotalEarned: 8, TotalUsed: 3}, nil)

	wallet, err := svc.AwardPoints(context.Background(), buyerID, 3)

	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, 5, wallet.Points)
	assert.Equal(t, wallet.TotalEarned-wallet.TotalUsed, wallet.Points)
}

func TestRedeemPoints_Succeeds(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)
	buyerID := uuid.New()

	buyerRepo.On("RedeemWalletPoints", mock.Anything, buyerID, 4).
		Return(&entity.CreditWallet{Points: 1, TotalEarned: 8, TotalUsed: 7}, nil)

	out, err := svc.RedeemPoints(context.Background(), buyerID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, out.PointsUsed)
	assert.True(t, out.DiscountAmount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 1, out.Wallet.Points)
}

func TestRedeemPoints_InsufficientBalance(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)
	buyerID := uuid.New()

	buyerRepo.On("RedeemWalletPoints", mock.Anything, buyerID, 10).
		Return(nil, repository.ErrInsufficientPoints)

	_, err := svc.RedeemPoints(context.Background(), buyerID, 10)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientPoints.ErrorCode(), appErr.ErrorCode())
}

func TestRedeemPoints_RejectsNonPositiveAmount(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)

	for _, points := range []int{0, -5} {
		_, err := svc.RedeemPoints(context.Background(), uuid.New(), points)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidPointsAmount.ErrorCode(), appErr.ErrorCode())
	}

	buyerRepo.AssertNotCalled(t, "RedeemWalletPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetWallet_ReturnsSnapshot(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)
	buyer := &entity.Buyer{
		ID:     uuid.New(),
		Wallet: entity.CreditWallet{Points: 7, TotalEarned: 9, TotalUsed: 2},
	}

	buyerRepo.On("FindByID", mock.Anything, buyer.ID).Return(buyer, nil)

	out, err := svc.GetWallet(context.Background(), buyer.ID)

	require.NoError(t, err)
	assert.Equal(t, 7, out.EcoPoints)
	assert.Equal(t, usecase.PointValue, out.PointValue)
	assert.Equal(t, buyer.Wallet, out.Wallet)
}

func TestGetWallet_UnknownBuyer(t *testing.T) {
	svc, buyerRepo, _ := newWalletService(t)
	buyerID := uuid.New()

	buyerRepo.On("FindByID", mock.Anything, buyerID).Return(nil, repository.ErrBuyerNotFound)

	_, err := svc.GetWallet(context.Background(), buyerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrBuyerNotFound.ErrorCode(), appErr.ErrorCode())
}
