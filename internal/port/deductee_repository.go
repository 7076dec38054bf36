package port

import (
	"context"

	"github.com/google/uuid"

	"taxdesk/internal/domain"
)

// DeducteeRepository persists deductee records. The server is the system
// of record; listings always reflect stored state.
type DeducteeRepository interface {
	Create(ctx context.Context, d *domain.Deductee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deductee, error)
	List(ctx context.Context, search string, category domain.DeducteeCategory) ([]domain.Deductee, error)
	Update(ctx context.Context, d *domain.Deductee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
