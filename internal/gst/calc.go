// Package gst implements the GST rate calculation core: single-rate
// breakdowns, slab-wise comparison, and line-item aggregation.
package gst

import (
	"math"

	"taxdesk/internal/domain"
)

// Slabs are the canonical GST slab rates, in ascending display order.
var Slabs = []float64{0, 5, 12, 18, 28}

var standardRates = map[float64]bool{
	0: true, 5: true, 12: true, 18: true, 28: true,
}

// Breakdown is the result of splitting an amount into taxable value and tax
// at a given rate. CGST and SGST are each half of the tax (intra-state
// view); IGST is the full tax (inter-state view). The two views describe
// the same total and are never summed together.
type Breakdown struct {
	Rate            float64 `json:"rate"`
	Inclusive       bool    `json:"inclusive"`
	TaxableAmount   float64 `json:"taxable_amount"`
	CGST            float64 `json:"cgst"`
	SGST            float64 `json:"sgst"`
	IGST            float64 `json:"igst"`
	TotalTax        float64 `json:"total_tax"`
	TotalAmount     float64 `json:"total_amount"`
	NonStandardRate bool    `json:"non_standard_rate"`
}

// Compute splits amount at the given rate. With inclusive=true the amount
// is treated as tax-inclusive and the taxable value is backed out;
// otherwise tax is added on top. Non-positive or non-finite amounts and
// rates outside [0,100] are rejected before any computation.
func Compute(amount, rate float64, inclusive bool) (Breakdown, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Breakdown{}, domain.ErrInvalidAmount
	}
	if math.IsNaN(rate) || rate < 0 || rate > 100 {
		return Breakdown{}, domain.ErrInvalidRate
	}

	var taxable, tax float64
	if inclusive {
		taxable = amount / (1 + rate/100)
		tax = amount - taxable
	} else {
		taxable = amount
		tax = amount * rate / 100
	}

	return Breakdown{
		Rate:            rate,
		Inclusive:       inclusive,
		TaxableAmount:   taxable,
		CGST:            tax / 2,
		SGST:            tax / 2,
		IGST:            tax,
		TotalTax:        tax,
		TotalAmount:     taxable + tax,
		NonStandardRate: !standardRates[rate],
	}, nil
}

// CompareSlabs computes a breakdown for the same amount at every canonical
// slab rate, in slab order. Exactly one result per slab.
func CompareSlabs(amount float64, inclusive bool) ([]Breakdown, error) {
	results := make([]Breakdown, 0, len(Slabs))
	for _, rate := range Slabs {
		b, err := Compute(amount, rate, inclusive)
		if err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	return results, nil
}
