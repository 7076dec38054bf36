package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/tds"
)

// DeducteeMutationOutput carries the mutated record together with the
// refetched full list, so clients never render a stale collection after a
// write.
type DeducteeMutationOutput struct {
	Deductee  *domain.Deductee  `json:"deductee"`
	Deductees []domain.Deductee `json:"deductees"`
}

// DeductionOutput is the computed TDS deduction for one payment to a
// deductee.
type DeductionOutput struct {
	DeducteeID   uuid.UUID `json:"deductee_id"`
	TDSSection   string    `json:"tds_section"`
	Payment      float64   `json:"payment"`
	TDSAmount    float64   `json:"tds_amount"`
	NetPayable   float64   `json:"net_payable"`
	SectionKnown bool      `json:"section_known"`
}

// DeducteeService defines the deductee management contract. Mutations
// return field-level validation failures as data, not errors; err is
// reserved for persistence and lookup problems.
type DeducteeService interface {
	Create(ctx context.Context, input tds.DeducteeInput) (*DeducteeMutationOutput, domain.FieldErrors, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deductee, error)
	List(ctx context.Context, search string, category domain.DeducteeCategory) ([]domain.Deductee, error)
	Update(ctx context.Context, id uuid.UUID, input tds.DeducteeInput) (*DeducteeMutationOutput, domain.FieldErrors, error)
	Delete(ctx context.Context, id uuid.UUID) ([]domain.Deductee, error)
	Deduction(ctx context.Context, id uuid.UUID, payment float64) (*DeductionOutput, error)
}

type deducteeService struct {
	repo     port.DeducteeRepository
	sections *tds.SectionLookup
}

// NewDeducteeService creates a new DeducteeService implementation.
func NewDeducteeService(repo port.DeducteeRepository, sections *tds.SectionLookup) DeducteeService {
	return &deducteeService{repo: repo, sections: sections}
}

// validate runs the field rules plus the section rate master check.
func (s *deducteeService) validate(input tds.DeducteeInput) domain.FieldErrors {
	errs := tds.Validate(input)
	if _, ok := errs["rate"]; !ok && s.sections != nil {
		if matched, valid := s.sections.RateMatches(input.TDSSection, input.Category, input.Rate); !matched {
			rates := make([]string, 0, len(valid))
			for _, r := range valid {
				rates = append(rates, fmt.Sprintf("%g%%", r.Rate))
			}
			errs["rate"] = fmt.Sprintf("rate does not match section %s (expected %s)",
				input.TDSSection, strings.Join(rates, " or "))
		}
	}
	return errs
}

// refetch reloads the unfiltered deductee list after a successful mutation.
func (s *deducteeService) refetch(ctx context.Context) ([]domain.Deductee, error) {
	return s.repo.List(ctx, "", "")
}

func (s *deducteeService) Create(ctx context.Context, input tds.DeducteeInput) (*DeducteeMutationOutput, domain.FieldErrors, error) {
	if errs := s.validate(input); !errs.Valid() {
		return nil, errs, nil
	}

	d := &domain.Deductee{
		Name:       strings.TrimSpace(input.Name),
		PAN:        tds.NormalizePAN(input.PAN),
		Category:   domain.DeducteeCategory(input.Category),
		TDSSection: strings.TrimSpace(input.TDSSection),
		Rate:       input.Rate,
		Threshold:  input.Threshold,
		Status:     domain.DeducteeActive,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, nil, err
	}

	deductees, err := s.refetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &DeducteeMutationOutput{Deductee: d, Deductees: deductees}, nil, nil
}

func (s *deducteeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deductee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *deducteeService) List(ctx context.Context, search string, category domain.DeducteeCategory) ([]domain.Deductee, error) {
	return s.repo.List(ctx, search, category)
}

func (s *deducteeService) Update(ctx context.Context, id uuid.UUID, input tds.DeducteeInput) (*DeducteeMutationOutput, domain.FieldErrors, error) {
	if errs := s.validate(input); !errs.Valid() {
		return nil, errs, nil
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	d.Name = strings.TrimSpace(input.Name)
	d.PAN = tds.NormalizePAN(input.PAN)
	d.Category = domain.DeducteeCategory(input.Category)
	d.TDSSection = strings.TrimSpace(input.TDSSection)
	d.Rate = input.Rate
	d.Threshold = input.Threshold

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, nil, err
	}

	deductees, err := s.refetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &DeducteeMutationOutput{Deductee: d, Deductees: deductees}, nil, nil
}

func (s *deducteeService) Delete(ctx context.Context, id uuid.UUID) ([]domain.Deductee, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.refetch(ctx)
}

// Deduction computes the TDS to withhold from a single payment to the
// deductee: nothing below the threshold, the full payment at the deductee
// rate above it. SectionKnown reports whether the deductee's section exists
// in the rate master.
func (s *deducteeService) Deduction(ctx context.Context, id uuid.UUID, payment float64) (*DeductionOutput, error) {
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tdsAmount := tds.ExpectedDeduction(payment, d.Rate, d.Threshold)
	sectionKnown := false
	if s.sections != nil {
		sectionKnown = s.sections.Exists(d.TDSSection)
	}

	return &DeductionOutput{
		DeducteeID:   d.ID,
		TDSSection:   d.TDSSection,
		Payment:      payment,
		TDSAmount:    tdsAmount,
		NetPayable:   payment - tdsAmount,
		SectionKnown: sectionKnown,
	}, nil
}
