// Package compliance derives dashboard figures from filing obligations:
// the aggregate compliance score and the upcoming-deadline list.
package compliance

import (
	"math"
	"sort"
	"time"

	"taxdesk/internal/domain"
)

// DefaultUpcomingLimit is how many deadlines the dashboard shows.
const DefaultUpcomingLimit = 3

// Score returns round(100 * compliant / total). An empty list scores 0.
func Score(items []domain.ComplianceItem) int {
	if len(items) == 0 {
		return 0
	}
	compliant := 0
	for i := range items {
		if items[i].Status == domain.ComplianceCompliant {
			compliant++
		}
	}
	return int(math.Round(float64(compliant) / float64(len(items)) * 100))
}

// Upcoming returns the items due strictly after now, soonest first,
// truncated to limit. Items without a due date are skipped. A limit of
// zero or less falls back to DefaultUpcomingLimit.
func Upcoming(items []domain.ComplianceItem, now time.Time, limit int) []domain.ComplianceItem {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	due := make([]domain.ComplianceItem, 0, len(items))
	for i := range items {
		if items[i].DueDate != nil && items[i].DueDate.After(now) {
			due = append(due, items[i])
		}
	}
	sort.SliceStable(due, func(a, b int) bool {
		return due[a].DueDate.Before(*due[b].DueDate)
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

// DaysRemaining returns the number of whole days until due, rounding any
// partial day up.
func DaysRemaining(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
