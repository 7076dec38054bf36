package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"taxdesk/internal/domain"
	"taxdesk/internal/matching"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (15 columns).
var columns = []string{
	"Voucher No",
	"Party GSTIN",
	"Invoice Amount",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"GSTR-1 Status",
	"GSTR-2A Status",
	"E-Invoice Status",
	"E-Way Bill Status",
	"Matching Status",
	"Discrepancies",
	"Created At",
}

// Writer wraps csv.Writer for exporting reconciliation results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 15-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteVouchers converts vouchers with their derived matching results to
// CSV rows and writes them. Vouchers and results are positionally paired.
func (w *Writer) WriteVouchers(vouchers []domain.SalesVoucher, results []matching.Result) error {
	for i := range vouchers {
		var res matching.Result
		if i < len(results) {
			res = results[i]
		}
		if err := w.csv.Write(voucherToRow(&vouchers[i], res)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func voucherToRow(v *domain.SalesVoucher, res matching.Result) []string {
	row := make([]string, len(columns))
	row[0] = v.VoucherNo
	row[1] = v.PartyGSTIN
	row[2] = formatMoney(v.InvoiceAmount)
	row[3] = formatMoney(v.TaxableAmount)
	row[4] = formatMoney(v.CGST)
	row[5] = formatMoney(v.SGST)
	row[6] = formatMoney(v.IGST)
	row[7] = formatMoney(v.Cess)
	row[8] = string(v.GSTR1Status)
	row[9] = string(v.GSTR2Status)
	row[10] = v.EInvoiceStatus
	row[11] = v.EWayBillStatus
	row[12] = string(res.Status)
	row[13] = strings.Join(res.Discrepancies, "; ")
	row[14] = v.CreatedAt.Format(time.RFC3339)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_report_name}_{YYYY-MM-DD}.csv
func BuildFilename(reportName string) string {
	sanitized := SanitizeFilename(reportName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
