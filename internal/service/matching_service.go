package service

import (
	"context"
	"io"

	"taxdesk/internal/csvexport"
	"taxdesk/internal/domain"
	"taxdesk/internal/matching"
	"taxdesk/internal/port"
)

// CreateVoucherInput is the DTO for adding a sales voucher.
type CreateVoucherInput struct {
	VoucherNo      string  `json:"voucher_no" binding:"required"`
	PartyGSTIN     string  `json:"party_gstin"`
	InvoiceAmount  float64 `json:"invoice_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	CGST           float64 `json:"cgst"`
	SGST           float64 `json:"sgst"`
	IGST           float64 `json:"igst"`
	Cess           float64 `json:"cess"`
	GSTR1Status    string  `json:"gstr1_status"`
	GSTR2Status    string  `json:"gstr2_status"`
	EInvoiceStatus string  `json:"einvoice_status"`
	EWayBillStatus string  `json:"ewaybill_status"`
}

// ClassifiedVoucher is a voucher with its derived reconciliation view.
type ClassifiedVoucher struct {
	domain.SalesVoucher
	matching.Result
}

// ReconciliationOutput is the full matching dashboard payload.
type ReconciliationOutput struct {
	Vouchers []ClassifiedVoucher    `json:"vouchers"`
	Summary  matching.SummaryCounts `json:"summary"`
}

// MatchingService defines the GSTR reconciliation contract. CreateVoucher
// returns field-level validation failures as data, matching the deductee
// service.
type MatchingService interface {
	Reconcile(ctx context.Context) (*ReconciliationOutput, error)
	CreateVoucher(ctx context.Context, input CreateVoucherInput) (*ClassifiedVoucher, domain.FieldErrors, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type matchingService struct {
	repo port.VoucherRepository
}

// NewMatchingService creates a new MatchingService implementation.
func NewMatchingService(repo port.VoucherRepository) MatchingService {
	return &matchingService{repo: repo}
}

func (s *matchingService) Reconcile(ctx context.Context) (*ReconciliationOutput, error) {
	vouchers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	classified := make([]ClassifiedVoucher, 0, len(vouchers))
	results := make([]matching.Result, 0, len(vouchers))
	for i := range vouchers {
		res := matching.Classify(&vouchers[i])
		results = append(results, res)
		classified = append(classified, ClassifiedVoucher{
			SalesVoucher: vouchers[i],
			Result:       res,
		})
	}

	return &ReconciliationOutput{
		Vouchers: classified,
		Summary:  matching.Summarize(results),
	}, nil
}

func (s *matchingService) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*ClassifiedVoucher, domain.FieldErrors, error) {
	errs := domain.FieldErrors{}
	if input.GSTR1Status != "" && !domain.AllowedGSTR1Statuses[domain.GSTR1Status(input.GSTR1Status)] {
		errs["gstr1_status"] = "gstr1_status must be one of Filed, Not Filed, Pending, Error"
	}
	if input.GSTR2Status != "" && !domain.AllowedGSTR2Statuses[domain.GSTR2Status(input.GSTR2Status)] {
		errs["gstr2_status"] = "gstr2_status must be one of Matched, Unmatched, Disputed, Accepted, Rejected"
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	gstr1 := domain.GSTR1Status(input.GSTR1Status)
	if gstr1 == "" {
		gstr1 = domain.GSTR1Pending
	}
	gstr2 := domain.GSTR2Status(input.GSTR2Status)
	if gstr2 == "" {
		gstr2 = domain.GSTR2Unmatched
	}

	v := &domain.SalesVoucher{
		VoucherNo:      input.VoucherNo,
		PartyGSTIN:     input.PartyGSTIN,
		InvoiceAmount:  input.InvoiceAmount,
		TaxableAmount:  input.TaxableAmount,
		CGST:           input.CGST,
		SGST:           input.SGST,
		IGST:           input.IGST,
		Cess:           input.Cess,
		GSTR1Status:    gstr1,
		GSTR2Status:    gstr2,
		EInvoiceStatus: input.EInvoiceStatus,
		EWayBillStatus: input.EWayBillStatus,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, nil, err
	}
	return &ClassifiedVoucher{SalesVoucher: *v, Result: matching.Classify(v)}, nil, nil
}

// ExportCSV streams the classified voucher list as CSV, BOM first.
func (s *matchingService) ExportCSV(ctx context.Context, w io.Writer) error {
	vouchers, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	results := make([]matching.Result, 0, len(vouchers))
	for i := range vouchers {
		results = append(results, matching.Classify(&vouchers[i]))
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteVouchers(vouchers, results); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
