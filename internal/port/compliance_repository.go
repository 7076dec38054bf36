package port

import (
	"context"

	"taxdesk/internal/domain"
)

// ComplianceRepository persists filing obligations.
type ComplianceRepository interface {
	List(ctx context.Context) ([]domain.ComplianceItem, error)
	Create(ctx context.Context, item *domain.ComplianceItem) error
	Update(ctx context.Context, item *domain.ComplianceItem) error
}
