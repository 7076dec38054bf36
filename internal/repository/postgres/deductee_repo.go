package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
)

type deducteeRepo struct {
	db *sqlx.DB
}

// NewDeducteeRepo creates a new PostgreSQL-backed DeducteeRepository.
func NewDeducteeRepo(db *sqlx.DB) port.DeducteeRepository {
	return &deducteeRepo{db: db}
}

func (r *deducteeRepo) Create(ctx context.Context, d *domain.Deductee) error {
	d.ID = uuid.New()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	query := `INSERT INTO deductees
		(id, name, pan, category, tds_section, rate, threshold, total_deducted, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.PAN, d.Category, d.TDSSection,
		d.Rate, d.Threshold, d.TotalDeducted, d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "pan") {
			return domain.ErrDuplicatePAN
		}
		return fmt.Errorf("deducteeRepo.Create: %w", err)
	}
	return nil
}

func (r *deducteeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deductee, error) {
	var d domain.Deductee
	err := r.db.GetContext(ctx, &d, "SELECT * FROM deductees WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("deducteeRepo.GetByID: %w", err)
	}
	return &d, nil
}

func (r *deducteeRepo) List(ctx context.Context, search string, category domain.DeducteeCategory) ([]domain.Deductee, error) {
	query := "SELECT * FROM deductees WHERE 1=1"
	var args []interface{}

	if search != "" {
		args = append(args, "%"+strings.ToUpper(search)+"%")
		query += fmt.Sprintf(" AND (UPPER(name) LIKE $%d OR pan LIKE $%d)", len(args), len(args))
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY name"

	deductees := []domain.Deductee{}
	if err := r.db.SelectContext(ctx, &deductees, query, args...); err != nil {
		return nil, fmt.Errorf("deducteeRepo.List: %w", err)
	}
	return deductees, nil
}

func (r *deducteeRepo) Update(ctx context.Context, d *domain.Deductee) error {
	d.UpdatedAt = time.Now().UTC()
	query := `UPDATE deductees SET
		name = $1, pan = $2, category = $3, tds_section = $4,
		rate = $5, threshold = $6, total_deducted = $7, status = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		d.Name, d.PAN, d.Category, d.TDSSection,
		d.Rate, d.Threshold, d.TotalDeducted, d.Status, d.UpdatedAt, d.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "pan") {
			return domain.ErrDuplicatePAN
		}
		return fmt.Errorf("deducteeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *deducteeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM deductees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deducteeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
