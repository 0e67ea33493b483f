// Package repository provides testify-backed mocks for the persistence
// interfaces, used by the use case unit tests.
package repository

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerRepository mocks repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

// NewMockSellerRepository creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockSellerRepository(t *testing.T) *MockSellerRepository {
	m := &MockSellerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByOfferedProduct(ctx context.Context, productName string) ([]*entity.Seller, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}
