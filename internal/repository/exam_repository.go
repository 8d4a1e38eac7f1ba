package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutordesk/internal/model"
)

type ExamRepository struct {
	pool *pgxpool.Pool
}

func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

func (r *ExamRepository) Create(ctx context.Context, exam *model.Exam) error {
	query := `
		INSERT INTO exams (student_id, subject, title, date, grade, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		exam.StudentID,
		exam.Subject,
		exam.Title,
		exam.Date,
		exam.Grade,
		exam.Notes,
	).Scan(&exam.ID, &exam.CreatedAt)

	if err != nil {
		return fmt.Errorf("create exam: %w", err)
	}

	return nil
}

func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*model.Exam, error) {
	query := `
		SELECT id, student_id, subject, title, date, grade, notes, created_at
		FROM exams
		WHERE id = $1
	`

	var exam model.Exam
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&exam.ID,
		&exam.StudentID,
		&exam.Subject,
		&exam.Title,
		&exam.Date,
		&exam.Grade,
		&exam.Notes,
		&exam.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get exam by id: %w", err)
	}

	return &exam, nil
}

// GetByStudentID returns a student's exams, upcoming first.
func (r *ExamRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Exam, error) {
	query := `
		SELECT id, student_id, subject, title, date, grade, notes, created_at
		FROM exams
		WHERE student_id = $1
		ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get exams by student: %w", err)
	}
	defer rows.Close()

	var exams []*model.Exam
	for rows.Next() {
		var exam model.Exam
		err := rows.Scan(
			&exam.ID,
			&exam.StudentID,
			&exam.Subject,
			&exam.Title,
			&exam.Date,
			&exam.Grade,
			&exam.Notes,
			&exam.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan exam: %w", err)
		}
		exams = append(exams, &exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exams: %w", err)
	}

	return exams, nil
}

func (r *ExamRepository) Update(ctx context.Context, exam *model.Exam) error {
	query := `
		UPDATE exams
		SET subject = $2, title = $3, date = $4, grade = $5, notes = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, exam.ID, exam.Subject, exam.Title, exam.Date, exam.Grade, exam.Notes)
	if err != nil {
		return fmt.Errorf("update exam: %w", err)
	}

	return nil
}

func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM exams WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}

	return nil
}
