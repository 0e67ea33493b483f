// Package usecase provides testify-backed mocks for the use case
// interfaces, used where one use case depends on another.
package usecase

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"
	appusecase "mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWalletUsecase mocks usecase.WalletUsecase.
type MockWalletUsecase struct {
	mock.Mock
}

// NewMockWalletUsecase creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockWalletUsecase(t *testing.T) *MockWalletUsecase {
	m := &MockWalletUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWalletUsecase) ComputeEcoPoints(ctx context.Context, items []entity.OrderItem) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func (m *MockWalletUsecase) AwardPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	args := m.Called(ctx, buyerID, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CreditWallet), args.Error(1)
}

func (m *MockWalletUsecase) RedeemPoints(ctx context.Context, buyerID uuid.UUID, pointsToUse int) (*appusecase.RedeemPointsOutput, error) {
	args := m.Called(ctx, buyerID, pointsToUse)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*appusecase.RedeemPointsOutput), args.Error(1)
}

func (m *MockWalletUsecase) GetWallet(ctx context.Context, buyerID uuid.UUID) (*appusecase.WalletOutput, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*appusecase.WalletOutput), args.Error(1)
}
