package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, public_id, name, email, phone, guardian_name, guardian_phone,
	start_date, is_active, uses_shared_pricing, course_id, avatar_url, fixed_schedule,
	access_code, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	var s model.Student
	var schedule []byte
	err := row.Scan(
		&s.ID,
		&s.PublicID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.GuardianName,
		&s.GuardianPhone,
		&s.StartDate,
		&s.IsActive,
		&s.UsesSharedPricing,
		&s.CourseID,
		&s.AvatarURL,
		&schedule,
		&s.AccessCode,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &s.FixedSchedule); err != nil {
			return nil, fmt.Errorf("decode fixed_schedule: %w", err)
		}
	}
	return &s, nil
}

// Create inserts a student. The fixed schedule is stored as JSONB on
// the student row, the same shape the API serves.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	schedule, err := json.Marshal(student.FixedSchedule)
	if err != nil {
		return fmt.Errorf("encode fixed_schedule: %w", err)
	}

	query := `
		INSERT INTO students (public_id, name, email, phone, guardian_name, guardian_phone,
			start_date, is_active, uses_shared_pricing, course_id, avatar_url, fixed_schedule, access_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		student.PublicID,
		student.Name,
		student.Email,
		student.Phone,
		student.GuardianName,
		student.GuardianPhone,
		student.StartDate,
		student.IsActive,
		student.UsesSharedPricing,
		student.CourseID,
		student.AvatarURL,
		schedule,
		student.AccessCode,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID returns the student or nil when it does not exist.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

// GetByAccessCode resolves a portal login code to a student.
func (r *StudentRepository) GetByAccessCode(ctx context.Context, code string) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE access_code = $1 AND is_active = true`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by access code: %w", err)
	}

	return student, nil
}

// GetAll returns the roster, optionally only active students.
func (r *StudentRepository) GetAll(ctx context.Context, activeOnly bool) ([]*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

// Update rewrites every mutable field, schedule included.
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	schedule, err := json.Marshal(student.FixedSchedule)
	if err != nil {
		return fmt.Errorf("encode fixed_schedule: %w", err)
	}

	query := `
		UPDATE students
		SET name = $2, email = $3, phone = $4, guardian_name = $5, guardian_phone = $6,
			start_date = $7, is_active = $8, uses_shared_pricing = $9, course_id = $10,
			avatar_url = $11, fixed_schedule = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		student.ID,
		student.Name,
		student.Email,
		student.Phone,
		student.GuardianName,
		student.GuardianPhone,
		student.StartDate,
		student.IsActive,
		student.UsesSharedPricing,
		student.CourseID,
		student.AvatarURL,
		schedule,
	).Scan(&student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	return nil
}

// UpdateSchedule replaces only the fixed schedule.
func (r *StudentRepository) UpdateSchedule(ctx context.Context, id int64, slots []model.RecurringSlot) error {
	schedule, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode fixed_schedule: %w", err)
	}

	query := `UPDATE students SET fixed_schedule = $2, updated_at = now() WHERE id = $1`

	_, err = r.pool.Exec(ctx, query, id, schedule)
	if err != nil {
		return fmt.Errorf("update student schedule: %w", err)
	}

	return nil
}

// Delete removes the student; classes, invoices, exams and spins go
// with it by cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	return nil
}
