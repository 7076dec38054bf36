package port

import (
	"context"

	"taxdesk/internal/domain"
)

// VoucherRepository persists sales vouchers with their GSTR states.
type VoucherRepository interface {
	List(ctx context.Context) ([]domain.SalesVoucher, error)
	Create(ctx context.Context, v *domain.SalesVoucher) error
}
