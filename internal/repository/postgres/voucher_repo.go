package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type voucherRepo struct {
	db *sqlx.DB
}

// NewVoucherRepo creates a new PostgreSQL-backed VoucherRepository.
func NewVoucherRepo(db *sqlx.DB) port.VoucherRepository {
	return &voucherRepo{db: db}
}

func (r *voucherRepo) List(ctx context.Context) ([]domain.SalesVoucher, error) {
	vouchers := []domain.SalesVoucher{}
	query := "SELECT * FROM sales_vouchers ORDER BY voucher_no"
	if err := r.db.SelectContext(ctx, &vouchers, query); err != nil {
		return nil, fmt.Errorf("voucherRepo.List: %w", err)
	}
	return vouchers, nil
}

func (r *voucherRepo) Create(ctx context.Context, v *domain.SalesVoucher) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now().UTC()

	query := `INSERT INTO sales_vouchers
		(id, voucher_no, party_gstin, invoice_amount, taxable_amount,
		 cgst, sgst, igst, cess, gstr1_status, gstr2_status,
		 einvoice_status, ewaybill_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.VoucherNo, v.PartyGSTIN, v.InvoiceAmount, v.TaxableAmount,
		v.CGST, v.SGST, v.IGST, v.Cess, v.GSTR1Status, v.GSTR2Status,
		v.EInvoiceStatus, v.EWayBillStatus, v.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateVoucher
		}
		return fmt.Errorf("voucherRepo.Create: %w", err)
	}
	return nil
}
