package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
)

func TestNewItem(t *testing.T) {
	item, err := NewItem("Laptop", 2, 50000, 18)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Laptop", item.Name)
	assert.InDelta(t, 100000, item.TaxableAmount, 1e-9)
	assert.InDelta(t, 9000, item.CGST, 1e-9)
	assert.InDelta(t, 9000, item.SGST, 1e-9)
	assert.InDelta(t, 18000, item.TaxAmount, 1e-9)
	assert.InDelta(t, 118000, item.TotalAmount, 1e-9)
}

func TestNewItem_ZeroQuantityDefaultsToOne(t *testing.T) {
	item, err := NewItem("Service", 0, 1000, 18)
	require.NoError(t, err)
	assert.Equal(t, float64(1), item.Quantity)
	assert.InDelta(t, 1000, item.TaxableAmount, 1e-9)
}

func TestNewItem_ZeroPrice(t *testing.T) {
	item, err := NewItem("Free sample", 1, 0, 18)
	require.NoError(t, err)

	assert.Equal(t, float64(18), item.Rate)
	assert.Zero(t, item.TaxableAmount)
	assert.Zero(t, item.TaxAmount)
	assert.Zero(t, item.TotalAmount)

	// A free line never disturbs the totals.
	paid, _ := NewItem("Laptop", 1, 1000, 18)
	s := Summarize(Add(Add(nil, paid), item))
	assert.InDelta(t, 1000, s.TaxableTotal, 1e-9)
	assert.InDelta(t, 1180, s.GrandTotal, 1e-9)
}

func TestNewItem_ZeroPriceBadRateStillRejected(t *testing.T) {
	_, err := NewItem("Free sample", 1, 0, 200)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestNewItem_Invalid(t *testing.T) {
	_, err := NewItem("x", -1, 100, 18)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = NewItem("x", 1, -100, 18)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = NewItem("x", 1, 100, 200)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestNewItem_RateLockedPerItem(t *testing.T) {
	a, err := NewItem("A", 1, 1000, 5)
	require.NoError(t, err)
	b, err := NewItem("B", 1, 1000, 28)
	require.NoError(t, err)

	// Each item keeps the rate it was created with.
	assert.InDelta(t, 50, a.TaxAmount, 1e-9)
	assert.InDelta(t, 280, b.TaxAmount, 1e-9)
}

func TestAddRemove_Immutable(t *testing.T) {
	a, _ := NewItem("A", 1, 100, 18)
	b, _ := NewItem("B", 1, 200, 18)

	list := Add(nil, a)
	longer := Add(list, b)
	assert.Len(t, list, 1)
	assert.Len(t, longer, 2)

	shorter := Remove(longer, a.ID)
	assert.Len(t, longer, 2)
	require.Len(t, shorter, 1)
	assert.Equal(t, b.ID, shorter[0].ID)
}

func TestRemove_UnknownIDNoOp(t *testing.T) {
	a, _ := NewItem("A", 1, 100, 18)
	list := Add(nil, a)

	out := Remove(list, "does-not-exist")
	assert.Len(t, out, 1)
}

func TestSummarize(t *testing.T) {
	a, _ := NewItem("A", 1, 1000, 18)
	b, _ := NewItem("B", 2, 500, 5)
	items := Add(Add(nil, a), b)

	s := Summarize(items)
	assert.InDelta(t, 2000, s.TaxableTotal, 1e-9)
	assert.InDelta(t, a.TaxAmount+b.TaxAmount, s.TaxTotal, 1e-9)
	assert.InDelta(t, s.TaxTotal, s.CGSTTotal+s.SGSTTotal, 1e-9)
	// Additivity: the grand total is the sum of parts.
	assert.InDelta(t, s.TaxableTotal+s.TaxTotal, s.GrandTotal, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TaxableTotal)
	assert.Zero(t, s.TaxTotal)
	assert.Zero(t, s.GrandTotal)
}
