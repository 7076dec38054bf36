package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type complianceRepo struct {
	db *sqlx.DB
}

// NewComplianceRepo creates a new PostgreSQL-backed ComplianceRepository.
func NewComplianceRepo(db *sqlx.DB) port.ComplianceRepository {
	return &complianceRepo{db: db}
}

func (r *complianceRepo) List(ctx context.Context) ([]domain.ComplianceItem, error) {
	items := []domain.ComplianceItem{}
	query := "SELECT * FROM compliance_items ORDER BY due_date NULLS LAST, title"
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("complianceRepo.List: %w", err)
	}
	return items, nil
}

func (r *complianceRepo) Create(ctx context.Context, item *domain.ComplianceItem) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()

	query := `INSERT INTO compliance_items
		(id, title, status, due_date, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Status, item.DueDate, item.LastUpdated, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.Create: %w", err)
	}
	return nil
}

func (r *complianceRepo) Update(ctx context.Context, item *domain.ComplianceItem) error {
	now := time.Now().UTC()
	item.LastUpdated = &now

	query := `UPDATE compliance_items SET
		title = $1, status = $2, due_date = $3, last_updated = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		item.Title, item.Status, item.DueDate, item.LastUpdated, item.ID)
	if err != nil {
		return fmt.Errorf("complianceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
