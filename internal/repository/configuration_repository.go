package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/workroster/workroster-api/internal/models"
)

// ConfigurationRepository persists the single application settings row.
type ConfigurationRepository struct {
	db *sqlx.DB
}

// NewConfigurationRepository constructs the repository.
func NewConfigurationRepository(db *sqlx.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Get loads the settings row.
func (r *ConfigurationRepository) Get(ctx context.Context) (*models.Configuration, error) {
	const query = `SELECT id, background_color, updated_at FROM configurations ORDER BY updated_at DESC LIMIT 1`
	var cfg models.Configuration
	if err := r.db.GetContext(ctx, &cfg, query); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes the settings row, creating it on first use.
func (r *ConfigurationRepository) Upsert(ctx context.Context, cfg *models.Configuration) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	cfg.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO configurations (id, background_color, updated_at)
	VALUES (:id, :background_color, :updated_at)
	ON CONFLICT (id) DO UPDATE SET background_color = EXCLUDED.background_color, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, cfg); err != nil {
		return fmt.Errorf("upsert configuration: %w", err)
	}
	return nil
}
