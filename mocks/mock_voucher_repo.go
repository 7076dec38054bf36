package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
)

// MockVoucherRepo is a mock implementation of port.VoucherRepository.
type MockVoucherRepo struct {
	mock.Mock
}

func (m *MockVoucherRepo) List(ctx context.Context) ([]domain.SalesVoucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesVoucher), args.Error(1)
}

func (m *MockVoucherRepo) Create(ctx context.Context, v *domain.SalesVoucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
