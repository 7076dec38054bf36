package service

import (
	"context"
	"encoding/json"
	"errors"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/tds"
)

// SaveTDSReturnInput is the DTO for filing a Form 26Q return.
type SaveTDSReturnInput struct {
	AssessmentYear string          `json:"assessment_year" binding:"required"`
	Payload        json.RawMessage `json:"payload" binding:"required"`
}

// TDSReturnService defines the Form 26Q contract.
type TDSReturnService interface {
	GetByYear(ctx context.Context, assessmentYear string) (*domain.TDSReturn26Q, error)
	Save(ctx context.Context, input SaveTDSReturnInput) (*domain.TDSReturn26Q, error)
}

type tdsReturnService struct {
	repo port.TDSReturnRepository
}

// NewTDSReturnService creates a new TDSReturnService implementation.
func NewTDSReturnService(repo port.TDSReturnRepository) TDSReturnService {
	return &tdsReturnService{repo: repo}
}

func (s *tdsReturnService) GetByYear(ctx context.Context, assessmentYear string) (*domain.TDSReturn26Q, error) {
	if !tds.ValidAssessmentYear(assessmentYear) {
		return nil, domain.ErrInvalidAssessmentYear
	}
	return s.repo.GetByYear(ctx, assessmentYear)
}

// Save upserts the return for its assessment year. One row per year; a
// second save replaces the payload.
func (s *tdsReturnService) Save(ctx context.Context, input SaveTDSReturnInput) (*domain.TDSReturn26Q, error) {
	if !tds.ValidAssessmentYear(input.AssessmentYear) {
		return nil, domain.ErrInvalidAssessmentYear
	}

	ret, err := s.repo.GetByYear(ctx, input.AssessmentYear)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		ret = &domain.TDSReturn26Q{AssessmentYear: input.AssessmentYear}
	}
	ret.Payload = input.Payload

	if err := s.repo.Upsert(ctx, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
