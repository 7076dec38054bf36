package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
)

// MockTDSReturnRepo is a mock implementation of port.TDSReturnRepository.
type MockTDSReturnRepo struct {
	mock.Mock
}

func (m *MockTDSReturnRepo) GetByYear(ctx context.Context, assessmentYear string) (*domain.TDSReturn26Q, error) {
	args := m.Called(ctx, assessmentYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TDSReturn26Q), args.Error(1)
}

func (m *MockTDSReturnRepo) Upsert(ctx context.Context, ret *domain.TDSReturn26Q) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}
