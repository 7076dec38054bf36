package gst

import (
	"math"

	"github.com/google/uuid"

	"taxdesk/internal/domain"
)

// Item is a priced line item with its tax locked in at creation time.
// Changing the global rate later never recomputes existing items.
type Item struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Rate          float64 `json:"rate"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

// Summary holds the aggregated totals of a list of items.
type Summary struct {
	TaxableTotal float64 `json:"taxable_total"`
	CGSTTotal    float64 `json:"cgst_total"`
	SGSTTotal    float64 `json:"sgst_total"`
	TaxTotal     float64 `json:"tax_total"`
	GrandTotal   float64 `json:"grand_total"`
}

// NewItem builds an item and computes its tax in exclusive mode at the
// item's own rate. A zero quantity defaults to 1 (simple-calculator mode);
// a negative quantity or unit price is rejected. A zero-priced item (free
// sample, discount line) is valid and carries zero taxable value and tax.
func NewItem(name string, quantity, unitPrice, rate float64) (Item, error) {
	if quantity < 0 || unitPrice < 0 {
		return Item{}, domain.ErrInvalidAmount
	}
	if math.IsNaN(rate) || rate < 0 || rate > 100 {
		return Item{}, domain.ErrInvalidRate
	}
	if quantity == 0 {
		quantity = 1
	}

	item := Item{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Rate:      rate,
	}

	amount := quantity * unitPrice
	if amount == 0 {
		return item, nil
	}

	b, err := Compute(amount, rate, false)
	if err != nil {
		return Item{}, err
	}
	item.TaxableAmount = b.TaxableAmount
	item.CGST = b.CGST
	item.SGST = b.SGST
	item.TaxAmount = b.TotalTax
	item.TotalAmount = b.TotalAmount
	return item, nil
}

// Add appends an item, returning a new list. The input list is not mutated.
func Add(items []Item, item Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, item)
	return out
}

// Remove drops the item with the given id, returning a new list.
// Removing an unknown id is a no-op.
func Remove(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for i := range items {
		if items[i].ID == id {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// Summarize accumulates totals across items. An empty list yields all
// zeros. GrandTotal always equals TaxableTotal+TaxTotal because each item
// carries that same identity.
func Summarize(items []Item) Summary {
	var s Summary
	for i := range items {
		item := &items[i]
		s.TaxableTotal += item.TaxableAmount
		s.CGSTTotal += item.CGST
		s.SGSTTotal += item.SGST
		s.TaxTotal += item.TaxAmount
		s.GrandTotal += item.TotalAmount
	}
	return s
}
