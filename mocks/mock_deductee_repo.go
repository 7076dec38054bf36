package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxdesk/internal/domain"
)

// MockDeducteeRepo is a mock implementation of port.DeducteeRepository.
type MockDeducteeRepo struct {
	mock.Mock
}

func (m *MockDeducteeRepo) Create(ctx context.Context, d *domain.Deductee) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeducteeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deductee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deductee), args.Error(1)
}

func (m *MockDeducteeRepo) List(ctx context.Context, search string, category domain.DeducteeCategory) ([]domain.Deductee, error) {
	args := m.Called(ctx, search, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deductee), args.Error(1)
}

func (m *MockDeducteeRepo) Update(ctx context.Context, d *domain.Deductee) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeducteeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
