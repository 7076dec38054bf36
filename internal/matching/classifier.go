// Package matching classifies sales vouchers against their GSTR-1/GSTR-2A
// states. The classifier is a pure decision table: identical inputs always
// produce identical outputs.
package matching

import (
	"fmt"
	"math"

	"taxdesk/internal/domain"
)

// partialTolerance is the relative amount variance below which a filed but
// unmatched voucher is treated as partially matched rather than unmatched.
const partialTolerance = 0.05

// Result is the derived reconciliation view of a voucher. Discrepancies
// are advisory text; the list may be empty for any status (a voucher can
// be unmatched simply because GSTR-1 has not been filed yet).
type Result struct {
	Status        domain.MatchingStatus `json:"matching_status"`
	Discrepancies []string              `json:"discrepancies"`
}

// Classify derives the matching status for a voucher.
//
// Decision table over (gstr1_status, gstr2_status):
//
//	gstr2 Matched|Accepted        → Fully Matched
//	gstr2 Disputed                → Disputed
//	gstr1 Filed, gstr2 Unmatched  → Partially Matched when the amount
//	                                variance is under 5%, else Unmatched
//	anything else                 → Unmatched
func Classify(v *domain.SalesVoucher) Result {
	switch v.GSTR2Status {
	case domain.GSTR2Matched, domain.GSTR2Accepted:
		return Result{Status: domain.MatchFully, Discrepancies: []string{}}
	case domain.GSTR2Disputed:
		return Result{
			Status:        domain.MatchDisputed,
			Discrepancies: []string{"counterparty disputed the invoice in GSTR-2A"},
		}
	}

	discrepancies := []string{}
	if v.GSTR2Status == domain.GSTR2Rejected {
		discrepancies = append(discrepancies, "counterparty rejected the invoice in GSTR-2A")
	}

	if v.GSTR1Status == domain.GSTR1Filed && v.GSTR2Status == domain.GSTR2Unmatched {
		variance := AmountVariance(v)
		if variance < partialTolerance {
			return Result{Status: domain.MatchPartially, Discrepancies: discrepancies}
		}
		discrepancies = append(discrepancies,
			fmt.Sprintf("invoice amount differs from tax components by %.1f%%", variance*100))
	}

	return Result{Status: domain.MatchUnmatched, Discrepancies: discrepancies}
}

// AmountVariance returns the relative difference between the invoice
// amount and the sum of its tax components. A zero invoice amount counts
// as full variance unless the components are also zero.
func AmountVariance(v *domain.SalesVoucher) float64 {
	components := v.TaxableAmount + v.CGST + v.SGST + v.IGST + v.Cess
	if v.InvoiceAmount == 0 {
		if components == 0 {
			return 0
		}
		return 1
	}
	return math.Abs(v.InvoiceAmount-components) / v.InvoiceAmount
}

// SummaryCounts tallies classified vouchers by status for the dashboard.
type SummaryCounts struct {
	Total     int `json:"total"`
	Fully     int `json:"fully_matched"`
	Partially int `json:"partially_matched"`
	Unmatched int `json:"unmatched"`
	Disputed  int `json:"disputed"`
}

// Summarize counts each status across a classified batch.
func Summarize(results []Result) SummaryCounts {
	s := SummaryCounts{Total: len(results)}
	for i := range results {
		switch results[i].Status {
		case domain.MatchFully:
			s.Fully++
		case domain.MatchPartially:
			s.Partially++
		case domain.MatchDisputed:
			s.Disputed++
		default:
			s.Unmatched++
		}
	}
	return s
}
