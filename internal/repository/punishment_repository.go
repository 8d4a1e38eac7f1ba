package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

type PunishmentRepository struct {
	pool *pgxpool.Pool
}

func NewPunishmentRepository(pool *pgxpool.Pool) *PunishmentRepository {
	return &PunishmentRepository{pool: pool}
}

func (r *PunishmentRepository) CreateOption(ctx context.Context, option *model.PunishmentOption) error {
	query := `
		INSERT INTO punishment_options (label, weight, severity, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, option.Label, option.Weight, option.Severity, option.IsActive).
		Scan(&option.ID, &option.CreatedAt)
	if err != nil {
		return fmt.Errorf("create punishment option: %w", err)
	}

	return nil
}

func (r *PunishmentRepository) GetOptionByID(ctx context.Context, id int64) (*model.PunishmentOption, error) {
	query := `
		SELECT id, label, weight, severity, is_active, created_at
		FROM punishment_options
		WHERE id = $1
	`

	var option model.PunishmentOption
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&option.ID,
		&option.Label,
		&option.Weight,
		&option.Severity,
		&option.IsActive,
		&option.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get punishment option by id: %w", err)
	}

	return &option, nil
}

// GetActiveOptions returns the wheel as currently configured.
func (r *PunishmentRepository) GetActiveOptions(ctx context.Context) ([]*model.PunishmentOption, error) {
	query := `
		SELECT id, label, weight, severity, is_active, created_at
		FROM punishment_options
		WHERE is_active = true
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get active punishment options: %w", err)
	}
	defer rows.Close()

	var options []*model.PunishmentOption
	for rows.Next() {
		var option model.PunishmentOption
		err := rows.Scan(
			&option.ID,
			&option.Label,
			&option.Weight,
			&option.Severity,
			&option.IsActive,
			&option.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan punishment option: %w", err)
		}
		options = append(options, &option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate punishment options: %w", err)
	}

	return options, nil
}

func (r *PunishmentRepository) UpdateOption(ctx context.Context, option *model.PunishmentOption) error {
	query := `
		UPDATE punishment_options
		SET label = $2, weight = $3, severity = $4, is_active = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, option.ID, option.Label, option.Weight, option.Severity, option.IsActive)
	if err != nil {
		return fmt.Errorf("update punishment option: %w", err)
	}

	return nil
}

func (r *PunishmentRepository) DeleteOption(ctx context.Context, id int64) error {
	query := `DELETE FROM punishment_options WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete punishment option: %w", err)
	}

	return nil
}

// CreateSpin records a roulette result.
func (r *PunishmentRepository) CreateSpin(ctx context.Context, spin *model.PunishmentSpin) error {
	query := `
		INSERT INTO punishment_spins (student_id, option_id, label, spun_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, spin.StudentID, spin.OptionID, spin.Label, spin.SpunAt).Scan(&spin.ID)
	if err != nil {
		return fmt.Errorf("create punishment spin: %w", err)
	}

	return nil
}

// GetSpinsByStudent returns a student's spin history, newest first.
func (r *PunishmentRepository) GetSpinsByStudent(ctx context.Context, studentID int64) ([]*model.PunishmentSpin, error) {
	query := `
		SELECT id, student_id, option_id, label, spun_at
		FROM punishment_spins
		WHERE student_id = $1
		ORDER BY spun_at DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get punishment spins by student: %w", err)
	}
	defer rows.Close()

	var spins []*model.PunishmentSpin
	for rows.Next() {
		var spin model.PunishmentSpin
		err := rows.Scan(&spin.ID, &spin.StudentID, &spin.OptionID, &spin.Label, &spin.SpunAt)
		if err != nil {
			return nil, fmt.Errorf("scan punishment spin: %w", err)
		}
		spins = append(spins, &spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate punishment spins: %w", err)
	}

	return spins, nil
}
