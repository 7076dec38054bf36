package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/matching"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 15)
	assert.Equal(t, "Voucher No", row[0])
	assert.Equal(t, "Matching Status", row[12])
	assert.Equal(t, "Created At", row[14])
}

func TestWriteVouchers(t *testing.T) {
	createdAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	vouchers := []domain.SalesVoucher{
		{
			ID:             uuid.New(),
			VoucherNo:      "SV-2025-001",
			PartyGSTIN:     "29AABCU9603R1ZM",
			InvoiceAmount:  118000,
			TaxableAmount:  100000,
			CGST:           9000,
			SGST:           9000,
			GSTR1Status:    domain.GSTR1Filed,
			GSTR2Status:    domain.GSTR2Matched,
			EInvoiceStatus: "Generated",
			EWayBillStatus: "Generated",
			CreatedAt:      createdAt,
		},
	}
	results := []matching.Result{
		{Status: domain.MatchFully, Discrepancies: []string{}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteVouchers(vouchers, results))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 15)
	assert.Equal(t, "SV-2025-001", row[0])
	assert.Equal(t, "29AABCU9603R1ZM", row[1])
	assert.Equal(t, "118000.00", row[2])
	assert.Equal(t, "100000.00", row[3])
	assert.Equal(t, "9000.00", row[4])
	assert.Equal(t, "9000.00", row[5])
	assert.Equal(t, "0.00", row[6])
	assert.Equal(t, "Filed", row[8])
	assert.Equal(t, "Matched", row[9])
	assert.Equal(t, "Fully Matched", row[12])
	assert.Equal(t, "", row[13])
	assert.Equal(t, "2025-08-01T10:00:00Z", row[14])
}

func TestWriteVouchers_Discrepancies(t *testing.T) {
	vouchers := []domain.SalesVoucher{
		{VoucherNo: "SV-002", GSTR2Status: domain.GSTR2Disputed, CreatedAt: time.Now()},
	}
	results := []matching.Result{
		{Status: domain.MatchDisputed, Discrepancies: []string{"first", "second"}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteVouchers(vouchers, results))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "first; second", row[13])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "GSTR Reconciliation", "GSTR_Reconciliation"},
		{"special chars", "FY 2024-25 / Q3 (Oct–Dec)", "FY_2024-25_Q3_Oct_Dec"},
		{"hyphens and underscores preserved", "my-report_2025", "my-report_2025"},
		{"consecutive underscores collapsed", "test___report", "test_report"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	filename := BuildFilename("gstr reconciliation")
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "gstr_reconciliation_"+today+".csv", filename)
}
