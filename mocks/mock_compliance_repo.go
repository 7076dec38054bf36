package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
)

// MockComplianceRepo is a mock implementation of port.ComplianceRepository.
type MockComplianceRepo struct {
	mock.Mock
}

func (m *MockComplianceRepo) List(ctx context.Context) ([]domain.ComplianceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceItem), args.Error(1)
}

func (m *MockComplianceRepo) Create(ctx context.Context, item *domain.ComplianceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockComplianceRepo) Update(ctx context.Context, item *domain.ComplianceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
