package port

import (
	"context"

	"taxdesk/internal/domain"
)

// TDSReturnRepository persists Form 26Q returns, one row per assessment
// year.
type TDSReturnRepository interface {
	GetByYear(ctx context.Context, assessmentYear string) (*domain.TDSReturn26Q, error)
	Upsert(ctx context.Context, ret *domain.TDSReturn26Q) error
}
