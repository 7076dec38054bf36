package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taxdesk/internal/port"
)

type kvRepo struct {
	db *sqlx.DB
}

// NewKVRepo creates a new PostgreSQL-backed KVStore over the app_state
// table.
func NewKVRepo(db *sqlx.DB) port.KVStore {
	return &kvRepo{db: db}
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := "SELECT value FROM app_state WHERE key = $1"
	err := r.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kvRepo.Get: %w", err)
	}
	return value, true, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("kvRepo.Set: %w", err)
	}
	return nil
}
