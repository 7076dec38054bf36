package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxdesk/internal/compliance"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

// CreateComplianceItemInput is the DTO for creating a filing obligation.
type CreateComplianceItemInput struct {
	Title   string     `json:"title" binding:"required"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateComplianceItemInput is the DTO for updating a filing obligation.
type UpdateComplianceItemInput struct {
	Title   *string    `json:"title"`
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"due_date"`
}

// UpcomingDeadline is one dashboard deadline with its countdown.
type UpcomingDeadline struct {
	Item     domain.ComplianceItem `json:"item"`
	DaysLeft int                   `json:"days_left"`
}

// DashboardOutput is the compliance dashboard payload.
type DashboardOutput struct {
	Items    []domain.ComplianceItem `json:"items"`
	Score    int                     `json:"score"`
	Upcoming []UpcomingDeadline      `json:"upcoming"`
}

// ComplianceService defines the compliance dashboard contract. Mutations
// return field-level validation failures as data, matching the deductee
// service.
type ComplianceService interface {
	Dashboard(ctx context.Context) (*DashboardOutput, error)
	CreateItem(ctx context.Context, input CreateComplianceItemInput) (*domain.ComplianceItem, domain.FieldErrors, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input UpdateComplianceItemInput) (*domain.ComplianceItem, domain.FieldErrors, error)
	SendReminders(ctx context.Context, toEmail string) (int, error)
}

type complianceService struct {
	repo   port.ComplianceRepository
	sender port.EmailSender
}

// NewComplianceService creates a new ComplianceService implementation.
func NewComplianceService(repo port.ComplianceRepository, sender port.EmailSender) ComplianceService {
	return &complianceService{repo: repo, sender: sender}
}

func (s *complianceService) Dashboard(ctx context.Context) (*DashboardOutput, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	upcoming := compliance.Upcoming(items, now, compliance.DefaultUpcomingLimit)
	deadlines := make([]UpcomingDeadline, 0, len(upcoming))
	for _, item := range upcoming {
		deadlines = append(deadlines, UpcomingDeadline{
			Item:     item,
			DaysLeft: compliance.DaysRemaining(*item.DueDate, now),
		})
	}

	return &DashboardOutput{
		Items:    items,
		Score:    compliance.Score(items),
		Upcoming: deadlines,
	}, nil
}

// validStatus checks a status string against the allowed set. Empty means
// the caller did not set one.
func validStatus(status string) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if status != "" && !domain.AllowedComplianceStatuses[domain.ComplianceStatus(status)] {
		errs["status"] = "status must be one of compliant, warning, critical, pending"
	}
	return errs
}

func (s *complianceService) CreateItem(ctx context.Context, input CreateComplianceItemInput) (*domain.ComplianceItem, domain.FieldErrors, error) {
	if errs := validStatus(input.Status); !errs.Valid() {
		return nil, errs, nil
	}

	status := domain.ComplianceStatus(input.Status)
	if status == "" {
		status = domain.CompliancePending
	}
	item := &domain.ComplianceItem{
		Title:   input.Title,
		Status:  status,
		DueDate: input.DueDate,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, nil, nil
}

func (s *complianceService) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateComplianceItemInput) (*domain.ComplianceItem, domain.FieldErrors, error) {
	if input.Status != nil {
		if errs := validStatus(*input.Status); !errs.Valid() {
			return nil, errs, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	var item *domain.ComplianceItem
	for i := range items {
		if items[i].ID == id {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Status != nil {
		item.Status = domain.ComplianceStatus(*input.Status)
	}
	if input.DueDate != nil {
		item.DueDate = input.DueDate
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, nil, nil
}

// SendReminders emails the upcoming deadlines and returns how many were
// included. Nothing due means no email.
func (s *complianceService) SendReminders(ctx context.Context, toEmail string) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	upcoming := compliance.Upcoming(items, now, compliance.DefaultUpcomingLimit)
	if len(upcoming) == 0 {
		return 0, nil
	}

	deadlines := make([]port.ReminderDeadline, 0, len(upcoming))
	for _, item := range upcoming {
		deadlines = append(deadlines, port.ReminderDeadline{
			Title:    item.Title,
			DueDate:  *item.DueDate,
			DaysLeft: compliance.DaysRemaining(*item.DueDate, now),
		})
	}

	if err := s.sender.SendDeadlineReminder(ctx, toEmail, deadlines); err != nil {
		return 0, err
	}
	return len(deadlines), nil
}
