package tds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxdesk/internal/port"
)

func testLookup() *SectionLookup {
	return NewSectionLookup([]port.TDSSectionEntry{
		{Section: "194C", Category: "individual", Rate: 1, Threshold: 30000},
		{Section: "194C", Category: "company", Rate: 2, Threshold: 30000},
		{Section: "194J", Category: "", Rate: 10, Threshold: 30000},
	})
}

func TestSectionLookup_Exists(t *testing.T) {
	l := testLookup()
	assert.True(t, l.Exists("194C"))
	assert.True(t, l.Exists("194J"))
	assert.False(t, l.Exists("194Z"))
}

func TestSectionLookup_Rates(t *testing.T) {
	l := testLookup()
	assert.Len(t, l.Rates("194C"), 2)
	assert.Nil(t, l.Rates("194Z"))
}

func TestRateMatches(t *testing.T) {
	l := testLookup()

	matched, _ := l.RateMatches("194C", "individual", 1)
	assert.True(t, matched)

	matched, _ = l.RateMatches("194C", "company", 2)
	assert.True(t, matched)

	matched, valid := l.RateMatches("194C", "individual", 5)
	assert.False(t, matched)
	assert.NotEmpty(t, valid)

	// Category-agnostic entries match any category.
	matched, _ = l.RateMatches("194J", "firm", 10)
	assert.True(t, matched)
}

func TestRateMatches_UnknownSectionNeverMismatches(t *testing.T) {
	l := testLookup()
	matched, valid := l.RateMatches("194Z", "company", 99)
	assert.True(t, matched)
	assert.Nil(t, valid)
}

func TestRateMatches_Tolerance(t *testing.T) {
	l := testLookup()
	matched, _ := l.RateMatches("194J", "company", 10.005)
	assert.True(t, matched)
}
