package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taxdesk/internal/port"
)

type tdsSectionRepo struct {
	db *sqlx.DB
}

// NewTDSSectionRepo creates a new PostgreSQL-backed TDSSectionRepository.
func NewTDSSectionRepo(db *sqlx.DB) port.TDSSectionRepository {
	return &tdsSectionRepo{db: db}
}

func (r *tdsSectionRepo) LoadAll(ctx context.Context) ([]port.TDSSectionEntry, error) {
	entries := []port.TDSSectionEntry{}
	query := "SELECT section, category, rate, threshold FROM tds_sections ORDER BY section"
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("tdsSectionRepo.LoadAll: %w", err)
	}
	return entries, nil
}
