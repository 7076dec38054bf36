package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func TestTDSReturnGet_InvalidYear(t *testing.T) {
	repo := new(mocks.MockTDSReturnRepo)
	svc := service.NewTDSReturnService(repo)

	_, err := svc.GetByYear(context.Background(), "2025")
	assert.ErrorIs(t, err, domain.ErrInvalidAssessmentYear)
	repo.AssertNotCalled(t, "GetByYear", mock.Anything, mock.Anything)
}

func TestTDSReturnSave_New(t *testing.T) {
	repo := new(mocks.MockTDSReturnRepo)
	svc := service.NewTDSReturnService(repo)

	payload := json.RawMessage(`{"deductor":{"tan":"BLRA12345C"}}`)
	repo.On("GetByYear", mock.Anything, "2025-26").Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.TDSReturn26Q")).Return(nil)

	ret, err := svc.Save(context.Background(), service.SaveTDSReturnInput{
		AssessmentYear: "2025-26",
		Payload:        payload,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-26", ret.AssessmentYear)
	assert.JSONEq(t, string(payload), string(ret.Payload))
	repo.AssertExpectations(t)
}

func TestTDSReturnSave_WrappedNotFound(t *testing.T) {
	repo := new(mocks.MockTDSReturnRepo)
	svc := service.NewTDSReturnService(repo)

	// Repositories wrap sentinels; a wrapped not-found still means "create".
	wrapped := fmt.Errorf("tdsReturnRepo.GetByYear: %w", domain.ErrNotFound)
	repo.On("GetByYear", mock.Anything, "2024-25").Return(nil, wrapped)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.TDSReturn26Q")).Return(nil)

	ret, err := svc.Save(context.Background(), service.SaveTDSReturnInput{
		AssessmentYear: "2024-25",
		Payload:        json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-25", ret.AssessmentYear)
	repo.AssertExpectations(t)
}

func TestTDSReturnSave_ReplacesExisting(t *testing.T) {
	repo := new(mocks.MockTDSReturnRepo)
	svc := service.NewTDSReturnService(repo)

	existing := &domain.TDSReturn26Q{
		AssessmentYear: "2025-26",
		Payload:        json.RawMessage(`{"old":true}`),
	}
	repo.On("GetByYear", mock.Anything, "2025-26").Return(existing, nil)
	repo.On("Upsert", mock.Anything, existing).Return(nil)

	ret, err := svc.Save(context.Background(), service.SaveTDSReturnInput{
		AssessmentYear: "2025-26",
		Payload:        json.RawMessage(`{"old":false}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"old":false}`, string(ret.Payload))
}

func TestTDSReturnSave_InvalidYear(t *testing.T) {
	repo := new(mocks.MockTDSReturnRepo)
	svc := service.NewTDSReturnService(repo)

	_, err := svc.Save(context.Background(), service.SaveTDSReturnInput{
		AssessmentYear: "26Q-2025",
		Payload:        json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAssessmentYear)
}
