package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxdesk/internal/domain"
)

func voucher(gstr1 domain.GSTR1Status, gstr2 domain.GSTR2Status) *domain.SalesVoucher {
	return &domain.SalesVoucher{
		VoucherNo:     "SV-001",
		InvoiceAmount: 118000,
		TaxableAmount: 100000,
		CGST:          9000,
		SGST:          9000,
		GSTR1Status:   gstr1,
		GSTR2Status:   gstr2,
	}
}

func TestClassify_DecisionTable(t *testing.T) {
	tests := []struct {
		name  string
		gstr1 domain.GSTR1Status
		gstr2 domain.GSTR2Status
		want  domain.MatchingStatus
	}{
		{"matched", domain.GSTR1Filed, domain.GSTR2Matched, domain.MatchFully},
		{"accepted", domain.GSTR1Filed, domain.GSTR2Accepted, domain.MatchFully},
		{"accepted without filing", domain.GSTR1Pending, domain.GSTR2Accepted, domain.MatchFully},
		{"disputed", domain.GSTR1Filed, domain.GSTR2Disputed, domain.MatchDisputed},
		{"filed unmatched small variance", domain.GSTR1Filed, domain.GSTR2Unmatched, domain.MatchPartially},
		{"not filed", domain.GSTR1NotFiled, domain.GSTR2Unmatched, domain.MatchUnmatched},
		{"pending", domain.GSTR1Pending, domain.GSTR2Unmatched, domain.MatchUnmatched},
		{"error", domain.GSTR1Error, domain.GSTR2Unmatched, domain.MatchUnmatched},
		{"rejected", domain.GSTR1Filed, domain.GSTR2Rejected, domain.MatchUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(voucher(tt.gstr1, tt.gstr2))
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	v := voucher(domain.GSTR1Filed, domain.GSTR2Unmatched)
	first := Classify(v)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(v))
	}
}

func TestClassify_VarianceTieBreak(t *testing.T) {
	// Components sum to exactly the invoice amount: partial match.
	v := voucher(domain.GSTR1Filed, domain.GSTR2Unmatched)
	got := Classify(v)
	assert.Equal(t, domain.MatchPartially, got.Status)
	assert.Empty(t, got.Discrepancies)

	// Components far from the invoice amount: unmatched with a discrepancy.
	v.InvoiceAmount = 150000
	got = Classify(v)
	assert.Equal(t, domain.MatchUnmatched, got.Status)
	assert.NotEmpty(t, got.Discrepancies)
}

func TestClassify_DisputedDiscrepancy(t *testing.T) {
	got := Classify(voucher(domain.GSTR1Filed, domain.GSTR2Disputed))
	assert.Len(t, got.Discrepancies, 1)
}

func TestClassify_RejectedDiscrepancy(t *testing.T) {
	got := Classify(voucher(domain.GSTR1Filed, domain.GSTR2Rejected))
	assert.Equal(t, domain.MatchUnmatched, got.Status)
	assert.Len(t, got.Discrepancies, 1)
}

func TestAmountVariance(t *testing.T) {
	v := voucher(domain.GSTR1Filed, domain.GSTR2Unmatched)
	assert.InDelta(t, 0, AmountVariance(v), 1e-9)

	v.InvoiceAmount = 120000
	assert.InDelta(t, 2000.0/120000, AmountVariance(v), 1e-9)
}

func TestAmountVariance_ZeroInvoice(t *testing.T) {
	v := &domain.SalesVoucher{}
	assert.Zero(t, AmountVariance(v))

	v.TaxableAmount = 100
	assert.Equal(t, 1.0, AmountVariance(v))
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Status: domain.MatchFully},
		{Status: domain.MatchFully},
		{Status: domain.MatchPartially},
		{Status: domain.MatchDisputed},
		{Status: domain.MatchUnmatched},
	}

	s := Summarize(results)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Fully)
	assert.Equal(t, 1, s.Partially)
	assert.Equal(t, 1, s.Disputed)
	assert.Equal(t, 1, s.Unmatched)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
}
