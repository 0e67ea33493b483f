package repository

import (
	"context"
	"testing"

	domainrepo "mandi/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewSellerRepository() domainrepo.SellerRepository {
	return m.Called().Get(0).(domainrepo.SellerRepository)
}

func (m *MockRepositoryFactory) NewBuyerRepository() domainrepo.BuyerRepository {
	return m.Called().Get(0).(domainrepo.BuyerRepository)
}

func (m *MockRepositoryFactory) NewProductRepository() domainrepo.ProductRepository {
	return m.Called().Get(0).(domainrepo.ProductRepository)
}

func (m *MockRepositoryFactory) NewOrderRepository() domainrepo.OrderRepository {
	return m.Called().Get(0).(domainrepo.OrderRepository)
}
