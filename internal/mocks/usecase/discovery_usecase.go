package usecase

import (
	"context"
	"testing"

	appusecase "mandi/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockDiscoveryUsecase mocks usecase.DiscoveryUsecase.
type MockDiscoveryUsecase struct {
	mock.Mock
}

// NewMockDiscoveryUsecase creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockDiscoveryUsecase(t *testing.T) *MockDiscoveryUsecase {
	m := &MockDiscoveryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDiscoveryUsecase) FindClosestSeller(ctx context.Context, input *appusecase.FindClosestSellerInput) (*appusecase.RankedResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*appusecase.RankedResult), args.Error(1)
}
