package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course into the catalog.
func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (name, subject, price_per_hour_cents, shared_price_per_hour_cents,
			default_duration_minutes, color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		course.Name,
		course.Subject,
		course.PricePerHourCents,
		course.SharedPricePerHourCents,
		course.DefaultDurationMinutes,
		course.Color,
		course.IsActive,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

// GetByID returns the course or nil when it does not exist.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `
		SELECT id, name, subject, price_per_hour_cents, shared_price_per_hour_cents,
			default_duration_minutes, color, is_active, created_at
		FROM courses
		WHERE id = $1
	`

	var course model.Course
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Subject,
		&course.PricePerHourCents,
		&course.SharedPricePerHourCents,
		&course.DefaultDurationMinutes,
		&course.Color,
		&course.IsActive,
		&course.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by id: %w", err)
	}

	return &course, nil
}

// GetAll returns the whole catalog, optionally only active courses.
func (r *CourseRepository) GetAll(ctx context.Context, activeOnly bool) ([]*model.Course, error) {
	query := `
		SELECT id, name, subject, price_per_hour_cents, shared_price_per_hour_cents,
			default_duration_minutes, color, is_active, created_at
		FROM courses
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get courses: %w", err)
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		var course model.Course
		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Subject,
			&course.PricePerHourCents,
			&course.SharedPricePerHourCents,
			&course.DefaultDurationMinutes,
			&course.Color,
			&course.IsActive,
			&course.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	return courses, nil
}

// Update rewrites pricing and display fields. Prices of already created
// classes are frozen and deliberately untouched by this.
func (r *CourseRepository) Update(ctx context.Context, course *model.Course) error {
	query := `
		UPDATE courses
		SET name = $2, subject = $3, price_per_hour_cents = $4, shared_price_per_hour_cents = $5,
			default_duration_minutes = $6, color = $7, is_active = $8
		WHERE id = $1
	`

	_, err := r.pool.Exec(
		ctx, query,
		course.ID,
		course.Name,
		course.Subject,
		course.PricePerHourCents,
		course.SharedPricePerHourCents,
		course.DefaultDurationMinutes,
		course.Color,
		course.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	return nil
}

// Delete removes a course from the catalog.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	return nil
}
