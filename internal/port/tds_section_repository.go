package port

import "context"

// TDSSectionEntry is one row of the TDS section rate master.
type TDSSectionEntry struct {
	Section   string  `db:"section"`
	Category  string  `db:"category"`
	Rate      float64 `db:"rate"`
	Threshold float64 `db:"threshold"`
}

// TDSSectionRepository loads the TDS section rate master.
type TDSSectionRepository interface {
	LoadAll(ctx context.Context) ([]TDSSectionEntry, error)
}
