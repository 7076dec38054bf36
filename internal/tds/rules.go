// Package tds implements the deductee rule set: field-level validation for
// deductee records, section rate lookups, and deduction arithmetic.
package tds

import (
	"regexp"
	"strings"

	"taxdesk/internal/domain"
)

var (
	panPattern  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	yearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// DeducteeInput is the unvalidated shape of a deductee create/update
// request.
type DeducteeInput struct {
	Name       string  `json:"name"`
	PAN        string  `json:"pan"`
	Category   string  `json:"category"`
	TDSSection string  `json:"tds_section"`
	Rate       float64 `json:"rate"`
	Threshold  float64 `json:"threshold"`
}

// NormalizePAN uppercases and trims a PAN before format checking.
func NormalizePAN(pan string) string {
	return strings.ToUpper(strings.TrimSpace(pan))
}

// Validate checks a deductee record field by field and returns every
// failure at once. The PAN is normalized to uppercase before the format
// check, matching how it is persisted.
func Validate(in DeducteeInput) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if pan := NormalizePAN(in.PAN); !panPattern.MatchString(pan) {
		errs["pan"] = "PAN must match AAAAA9999A"
	}
	if !domain.AllowedCategories[domain.DeducteeCategory(in.Category)] {
		errs["category"] = "category must be one of individual, company, huf, firm, aop, trust"
	}
	if strings.TrimSpace(in.TDSSection) == "" {
		errs["tds_section"] = "TDS section is required"
	}
	if in.Rate < 0 {
		errs["rate"] = "rate cannot be negative"
	}
	if in.Threshold < 0 {
		errs["threshold"] = "threshold cannot be negative"
	}

	return errs
}

// ValidAssessmentYear reports whether a Form 26Q assessment year is in
// YYYY-YY form (e.g. "2025-26").
func ValidAssessmentYear(year string) bool {
	return yearPattern.MatchString(year)
}

// ExpectedDeduction returns the TDS amount for a single payment: zero when
// the payment does not cross the section threshold, otherwise the full
// payment taxed at the deductee rate.
func ExpectedDeduction(payment, rate, threshold float64) float64 {
	if payment <= threshold {
		return 0
	}
	return payment * rate / 100
}
