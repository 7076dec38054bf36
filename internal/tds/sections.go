package tds

import (
	"math"

	"taxdesk/internal/port"
)

// SectionRate holds the statutory rate and threshold for one deductee
// category under a TDS section.
type SectionRate struct {
	Category  string
	Rate      float64
	Threshold float64
}

// SectionLookup provides fast in-memory lookups against the TDS section
// master. It is immutable after construction and safe for concurrent access.
type SectionLookup struct {
	bySection map[string][]SectionRate
}

// NewSectionLookup builds a SectionLookup from rows loaded from the
// tds_sections table.
func NewSectionLookup(entries []port.TDSSectionEntry) *SectionLookup {
	m := make(map[string][]SectionRate, len(entries))
	for idx := range entries {
		e := &entries[idx]
		m[e.Section] = append(m[e.Section], SectionRate{
			Category:  e.Category,
			Rate:      e.Rate,
			Threshold: e.Threshold,
		})
	}
	return &SectionLookup{bySection: m}
}

// Exists returns true if the section code is in the master list.
func (l *SectionLookup) Exists(section string) bool {
	_, ok := l.bySection[section]
	return ok
}

// Rates returns the statutory rate entries for a section, or nil if the
// section is unknown.
func (l *SectionLookup) Rates(section string) []SectionRate {
	return l.bySection[section]
}

// RateMatches checks whether a configured rate agrees with the section
// master for the given category. Sections absent from the master never
// mismatch, so a stale master does not block deductee entry.
func (l *SectionLookup) RateMatches(section, category string, rate float64) (matched bool, validRates []SectionRate) {
	validRates = l.Rates(section)
	if len(validRates) == 0 {
		return true, nil
	}
	for idx := range validRates {
		e := &validRates[idx]
		if e.Category != "" && e.Category != category {
			continue
		}
		if math.Abs(e.Rate-rate) < 0.01 {
			return true, validRates
		}
	}
	return false, validRates
}
