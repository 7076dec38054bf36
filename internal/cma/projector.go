// Package cma holds the Credit Monitoring Arrangement report state: six
// free-form financial statements as ordered row grids, with per-cell edits
// and lossless JSON persistence. The grid is data entry, not a spreadsheet
// engine; no cell is derived from another.
package cma

import (
	"encoding/json"
	"strconv"
	"strings"

	"taxdesk/internal/domain"
)

// Statement identifiers, addressable from the API.
const (
	StatementOperating     = "operating_statement"
	StatementBalanceSheet  = "balance_sheet"
	StatementCurrentAssets = "current_assets"
	StatementMPBF          = "mpbf"
	StatementFundsFlow     = "funds_flow"
	StatementRatios        = "ratios"
)

// Year field identifiers within a row.
const (
	FieldActualYear1    = "actual_year1"
	FieldActualYear2    = "actual_year2"
	FieldCurrentYear    = "current_year"
	FieldProjectedYear1 = "projected_year1"
	FieldProjectedYear2 = "projected_year2"
	FieldProjectedYear3 = "projected_year3"
	FieldProjectedYear4 = "projected_year4"
	FieldProjectedYear5 = "projected_year5"
)

// SrNo absorbs the mixed typing of serial numbers in stored reports: they
// arrive as numbers, strings, or nothing, and must round-trip unchanged in
// meaning.
type SrNo string

// UnmarshalJSON accepts string, number, or null.
func (s *SrNo) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SrNo(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = SrNo(num.String())
	return nil
}

// Row is one line of a statement grid.
type Row struct {
	SrNo           SrNo    `json:"sr_no"`
	Particulars    string  `json:"particulars"`
	ActualYear1    float64 `json:"actual_year1"`
	ActualYear2    float64 `json:"actual_year2"`
	CurrentYear    float64 `json:"current_year"`
	ProjectedYear1 float64 `json:"projected_year1"`
	ProjectedYear2 float64 `json:"projected_year2"`
	ProjectedYear3 float64 `json:"projected_year3"`
	ProjectedYear4 float64 `json:"projected_year4"`
	ProjectedYear5 float64 `json:"projected_year5"`
	Format         string  `json:"format"`
}

// CompanyInfo is the report header block.
type CompanyInfo struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
}

// Report is the full CMA report state.
type Report struct {
	CompanyInfo        CompanyInfo `json:"company_info"`
	OperatingStatement []Row       `json:"operating_statement"`
	BalanceSheet       []Row       `json:"balance_sheet"`
	CurrentAssets      []Row       `json:"current_assets"`
	MPBF               []Row       `json:"mpbf"`
	FundsFlow          []Row       `json:"funds_flow"`
	Ratios             []Row       `json:"ratios"`
	GeneratedDate      string      `json:"generated_date"`
}

// statement returns the rows for a statement id.
func (r *Report) statement(id string) []Row {
	switch id {
	case StatementOperating:
		return r.OperatingStatement
	case StatementBalanceSheet:
		return r.BalanceSheet
	case StatementCurrentAssets:
		return r.CurrentAssets
	case StatementMPBF:
		return r.MPBF
	case StatementFundsFlow:
		return r.FundsFlow
	case StatementRatios:
		return r.Ratios
	}
	return nil
}

func (r *Report) setStatement(id string, rows []Row) {
	switch id {
	case StatementOperating:
		r.OperatingStatement = rows
	case StatementBalanceSheet:
		r.BalanceSheet = rows
	case StatementCurrentAssets:
		r.CurrentAssets = rows
	case StatementMPBF:
		r.MPBF = rows
	case StatementFundsFlow:
		r.FundsFlow = rows
	case StatementRatios:
		r.Ratios = rows
	}
}

// Coerce converts free-form cell input to a number. Anything that does not
// parse coerces to 0.
func Coerce(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

// SetCell replaces exactly one year field on exactly one row, returning a
// new report. The source report, its row list, and every other row are
// untouched.
func SetCell(r Report, statementID string, rowIndex int, field string, value float64) (Report, error) {
	rows := r.statement(statementID)
	if rows == nil {
		return Report{}, domain.ErrNotFound
	}
	if rowIndex < 0 || rowIndex >= len(rows) {
		return Report{}, domain.ErrNotFound
	}

	updated := make([]Row, len(rows))
	copy(updated, rows)
	row := updated[rowIndex]

	switch field {
	case FieldActualYear1:
		row.ActualYear1 = value
	case FieldActualYear2:
		row.ActualYear2 = value
	case FieldCurrentYear:
		row.CurrentYear = value
	case FieldProjectedYear1:
		row.ProjectedYear1 = value
	case FieldProjectedYear2:
		row.ProjectedYear2 = value
	case FieldProjectedYear3:
		row.ProjectedYear3 = value
	case FieldProjectedYear4:
		row.ProjectedYear4 = value
	case FieldProjectedYear5:
		row.ProjectedYear5 = value
	default:
		return Report{}, domain.ErrNotFound
	}

	updated[rowIndex] = row
	r.setStatement(statementID, updated)
	return r, nil
}

// Serialize marshals the report for persistence or export.
func Serialize(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// Hydrate restores a report from stored JSON. The round-trip through
// Serialize is lossless, including format and sr_no fields.
func Hydrate(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, err
	}
	return r, nil
}
