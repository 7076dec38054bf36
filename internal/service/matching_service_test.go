package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/csvexport"
	"taxdesk/internal/domain"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func sampleVouchers() []domain.SalesVoucher {
	return []domain.SalesVoucher{
		{
			VoucherNo: "SV-001", InvoiceAmount: 118000, TaxableAmount: 100000,
			CGST: 9000, SGST: 9000,
			GSTR1Status: domain.GSTR1Filed, GSTR2Status: domain.GSTR2Matched,
		},
		{
			VoucherNo: "SV-002", InvoiceAmount: 59000, TaxableAmount: 50000,
			CGST: 4500, SGST: 4500,
			GSTR1Status: domain.GSTR1Filed, GSTR2Status: domain.GSTR2Unmatched,
		},
		{
			VoucherNo: "SV-003", InvoiceAmount: 236000, TaxableAmount: 200000,
			IGST:        36000,
			GSTR1Status: domain.GSTR1Filed, GSTR2Status: domain.GSTR2Disputed,
		},
		{
			VoucherNo: "SV-004", InvoiceAmount: 82600, TaxableAmount: 70000,
			CGST: 6300, SGST: 6300,
			GSTR1Status: domain.GSTR1Pending, GSTR2Status: domain.GSTR2Unmatched,
		},
	}
}

func TestReconcile(t *testing.T) {
	repo := new(mocks.MockVoucherRepo)
	svc := service.NewMatchingService(repo)
	repo.On("List", mock.Anything).Return(sampleVouchers(), nil)

	out, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Vouchers, 4)

	assert.Equal(t, domain.MatchFully, out.Vouchers[0].Status)
	assert.Equal(t, domain.MatchPartially, out.Vouchers[1].Status)
	assert.Equal(t, domain.MatchDisputed, out.Vouchers[2].Status)
	assert.Equal(t, domain.MatchUnmatched, out.Vouchers[3].Status)

	assert.Equal(t, 4, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.Fully)
	assert.Equal(t, 1, out.Summary.Partially)
	assert.Equal(t, 1, out.Summary.Disputed)
	assert.Equal(t, 1, out.Summary.Unmatched)
}

func TestCreateVoucher_Defaults(t *testing.T) {
	repo := new(mocks.MockVoucherRepo)
	svc := service.NewMatchingService(repo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SalesVoucher")).Return(nil)

	v, fieldErrs, err := svc.CreateVoucher(context.Background(), service.CreateVoucherInput{VoucherNo: "SV-010"})
	require.NoError(t, err)
	assert.True(t, fieldErrs.Valid())
	assert.Equal(t, domain.GSTR1Pending, v.GSTR1Status)
	assert.Equal(t, domain.GSTR2Unmatched, v.GSTR2Status)
	assert.Equal(t, domain.MatchUnmatched, v.Status)
}

func TestCreateVoucher_UnknownStatusRejected(t *testing.T) {
	repo := new(mocks.MockVoucherRepo)
	svc := service.NewMatchingService(repo)

	v, fieldErrs, err := svc.CreateVoucher(context.Background(), service.CreateVoucherInput{
		VoucherNo:   "SV-011",
		GSTR1Status: "bogus",
		GSTR2Status: "also-bogus",
	})
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Contains(t, fieldErrs, "gstr1_status")
	assert.Contains(t, fieldErrs, "gstr2_status")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVoucher_Duplicate(t *testing.T) {
	repo := new(mocks.MockVoucherRepo)
	svc := service.NewMatchingService(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateVoucher)

	_, _, err := svc.CreateVoucher(context.Background(), service.CreateVoucherInput{VoucherNo: "SV-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicateVoucher)
}

func TestExportCSV(t *testing.T) {
	repo := new(mocks.MockVoucherRepo)
	svc := service.NewMatchingService(repo)
	repo.On("List", mock.Anything).Return(sampleVouchers(), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	body := buf.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, csvexport.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 rows

	assert.Equal(t, "Voucher No", records[0][0])
	assert.Equal(t, "SV-001", records[1][0])
	assert.Equal(t, "Fully Matched", records[1][12])
	assert.Equal(t, "Partially Matched", records[2][12])
	assert.Equal(t, "Disputed", records[3][12])
	assert.Equal(t, "Unmatched", records[4][12])
}
