package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type tdsReturnRepo struct {
	db *sqlx.DB
}

// NewTDSReturnRepo creates a new PostgreSQL-backed TDSReturnRepository.
func NewTDSReturnRepo(db *sqlx.DB) port.TDSReturnRepository {
	return &tdsReturnRepo{db: db}
}

func (r *tdsReturnRepo) GetByYear(ctx context.Context, assessmentYear string) (*domain.TDSReturn26Q, error) {
	var ret domain.TDSReturn26Q
	query := "SELECT * FROM tds_returns WHERE assessment_year = $1"
	err := r.db.GetContext(ctx, &ret, query, assessmentYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("tdsReturnRepo.GetByYear: %w", err)
	}
	return &ret, nil
}

func (r *tdsReturnRepo) Upsert(ctx context.Context, ret *domain.TDSReturn26Q) error {
	now := time.Now().UTC()
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
		ret.CreatedAt = now
	}
	ret.UpdatedAt = now

	query := `INSERT INTO tds_returns (id, assessment_year, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (assessment_year)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		ret.ID, ret.AssessmentYear, ret.Payload, ret.CreatedAt, ret.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tdsReturnRepo.Upsert: %w", err)
	}
	return nil
}
