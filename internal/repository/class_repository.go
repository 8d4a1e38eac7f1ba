package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

type ClassRepository struct {
	pool *pgxpool.Pool
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// ClassFilter narrows List results. Nil/zero fields are ignored.
type ClassFilter struct {
	StudentID     *int64
	From          *time.Time
	To            *time.Time
	Status        model.ClassStatus
	PaymentStatus model.PaymentStatus
}

const classColumns = `id, student_id, course_id, date, start_time, end_time, duration_minutes,
	is_recurring, status, payment_status, price_cents, notes, created_at, updated_at`

func scanClass(row pgx.Row) (*model.Class, error) {
	var c model.Class
	err := row.Scan(
		&c.ID,
		&c.StudentID,
		&c.CourseID,
		&c.Date,
		&c.StartTime,
		&c.EndTime,
		&c.DurationMinutes,
		&c.IsRecurring,
		&c.Status,
		&c.PaymentStatus,
		&c.PriceCents,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts one class. A duplicate (student_id, date, start_time)
// fails on the unique constraint; callers decide whether that is an
// error (single create) or a skip (batch materialization) via
// base.IsUniqueViolation.
func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	query := `
		INSERT INTO classes (student_id, course_id, date, start_time, end_time, duration_minutes,
			is_recurring, status, payment_status, price_cents, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		class.StudentID,
		class.CourseID,
		class.Date,
		class.StartTime,
		class.EndTime,
		class.DurationMinutes,
		class.IsRecurring,
		class.Status,
		class.PaymentStatus,
		class.PriceCents,
		class.Notes,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

// GetByID returns the class or nil when it does not exist.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	class, err := scanClass(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return class, nil
}

// List returns classes matching the filter, ordered by date and time.
func (r *ClassRepository) List(ctx context.Context, filter ClassFilter) ([]*model.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE 1=1`
	var args []interface{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += ` AND student_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.PaymentStatus != "" {
		args = append(args, filter.PaymentStatus)
		query += ` AND payment_status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date, start_time`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}

	return classes, nil
}

// GetByStudentAndRange is what the reconciliation engine reads: every
// class of one student inside [from, to], both inclusive.
func (r *ClassRepository) GetByStudentAndRange(ctx context.Context, studentID int64, from, to time.Time) ([]*model.Class, error) {
	return r.List(ctx, ClassFilter{StudentID: &studentID, From: &from, To: &to})
}

// Update rewrites the mutable fields of a class. The price stays as
// created; only an explicit teacher edit may change it.
func (r *ClassRepository) Update(ctx context.Context, class *model.Class) error {
	query := `
		UPDATE classes
		SET course_id = $2, date = $3, start_time = $4, end_time = $5, duration_minutes = $6,
			status = $7, payment_status = $8, price_cents = $9, notes = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		class.ID,
		class.CourseID,
		class.Date,
		class.StartTime,
		class.EndTime,
		class.DurationMinutes,
		class.Status,
		class.PaymentStatus,
		class.PriceCents,
		class.Notes,
	).Scan(&class.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	return nil
}

// UpdateStatus flips the lifecycle status only.
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int64, status model.ClassStatus) error {
	query := `UPDATE classes SET status = $2, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update class status: %w", err)
	}

	return nil
}

// UpdatePaymentStatus flips the payment flag only.
func (r *ClassRepository) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	query := `UPDATE classes SET payment_status = $2, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update class payment status: %w", err)
	}

	return nil
}

// Delete removes one class.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM classes WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	return nil
}

// MonthlySummaryRow is one line of the dashboard statistics query.
type MonthlySummaryRow struct {
	CourseID       int64  `json:"course_id"`
	CourseName     string `json:"course_name"`
	ClassCount     int    `json:"class_count"`
	TotalMinutes   int    `json:"total_minutes"`
	RevenueCents   int    `json:"revenue_cents"`
	UnpaidCents    int    `json:"unpaid_cents"`
	CompletedCount int    `json:"completed_count"`
	CancelledCount int    `json:"cancelled_count"`
}

// MonthlySummary aggregates non-cancelled classes per course for one
// date range. Cancelled classes earn nothing and are counted apart.
func (r *ClassRepository) MonthlySummary(ctx context.Context, from, to time.Time) ([]*MonthlySummaryRow, error) {
	query := `
		SELECT c.course_id,
			co.name,
			COUNT(*) FILTER (WHERE c.status != 'cancelled'),
			COALESCE(SUM(c.duration_minutes) FILTER (WHERE c.status != 'cancelled'), 0),
			COALESCE(SUM(c.price_cents) FILTER (WHERE c.status != 'cancelled'), 0),
			COALESCE(SUM(c.price_cents) FILTER (WHERE c.status != 'cancelled' AND c.payment_status = 'unpaid'), 0),
			COUNT(*) FILTER (WHERE c.status = 'completed'),
			COUNT(*) FILTER (WHERE c.status = 'cancelled')
		FROM classes c
		JOIN courses co ON co.id = c.course_id
		WHERE c.date >= $1 AND c.date <= $2
		GROUP BY c.course_id, co.name
		ORDER BY co.name
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()

	var out []*MonthlySummaryRow
	for rows.Next() {
		var row MonthlySummaryRow
		err := rows.Scan(
			&row.CourseID,
			&row.CourseName,
			&row.ClassCount,
			&row.TotalMinutes,
			&row.RevenueCents,
			&row.UnpaidCents,
			&row.CompletedCount,
			&row.CancelledCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	return out, nil
}
