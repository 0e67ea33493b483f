package repository

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBuyerRepository mocks repository.BuyerRepository.
type MockBuyerRepository struct {
	mock.Mock
}

// NewMockBuyerRepository creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockBuyerRepository(t *testing.T) *MockBuyerRepository {
	m := &MockBuyerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBuyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Buyer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	return m.Called(ctx, buyer).Error(0)
}

func (m *MockBuyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	return m.Called(ctx, buyer).Error(0)
}

func (m *MockBuyerRepository) AwardWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	args := m.Called(ctx, buyerID, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CreditWallet), args.Error(1)
}

func (m *MockBuyerRepository) RedeemWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	args := m.Called(ctx, buyerID, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CreditWallet), args.Error(1)
}
