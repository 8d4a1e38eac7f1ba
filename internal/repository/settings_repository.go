package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

// SettingsRepository manages the single business-settings row. The
// migration seeds row id=1; there is never more than one.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	query := `
		SELECT business_name, business_email, invoice_prefix, tax_rate_percent,
			reminder_template, updated_at
		FROM settings
		WHERE id = 1
	`

	var s model.Settings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.BusinessName,
		&s.BusinessEmail,
		&s.InvoicePrefix,
		&s.TaxRatePercent,
		&s.ReminderTemplate,
		&s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *model.Settings) error {
	query := `
		UPDATE settings
		SET business_name = $1, business_email = $2, invoice_prefix = $3,
			tax_rate_percent = $4, reminder_template = $5, updated_at = now()
		WHERE id = 1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		s.BusinessName,
		s.BusinessEmail,
		s.InvoicePrefix,
		s.TaxRatePercent,
		s.ReminderTemplate,
	).Scan(&s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}
