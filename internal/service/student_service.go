package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/schedule"
)

type StudentService struct {
	studentRepo *repository.StudentRepository
	classRepo   *repository.ClassRepository
	logger      *zap.Logger
}

func NewStudentService(
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	logger *zap.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// Create registers a student. A public UUID and a portal access code
// are generated here; the access code is what the student portal logs
// in with.
func (s *StudentService) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	if strings.TrimSpace(student.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if msg := schedule.ValidateSlots(student.FixedSchedule); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	student.PublicID = uuid.New()
	student.AccessCode = newAccessCode()

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student created",
		zap.Int64("student_id", student.ID),
		zap.String("name", student.Name))

	return student, nil
}

func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", id, ErrNotFound)
	}
	return student, nil
}

// GetByAccessCode resolves a portal access code; unknown codes come
// back as ErrNotFound so the portal middleware can answer 401.
func (s *StudentService) GetByAccessCode(ctx context.Context, code string) (*model.Student, error) {
	if code == "" {
		return nil, fmt.Errorf("access code: %w", ErrNotFound)
	}
	student, err := s.studentRepo.GetByAccessCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("access code: %w", ErrNotFound)
	}
	return student, nil
}

func (s *StudentService) GetAll(ctx context.Context, activeOnly bool) ([]*model.Student, error) {
	return s.studentRepo.GetAll(ctx, activeOnly)
}

func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	existing, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("student %d: %w", student.ID, ErrNotFound)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if msg := schedule.ValidateSlots(student.FixedSchedule); msg != "" {
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	return s.studentRepo.Update(ctx, student)
}

// UpdateSchedule replaces the declared weekly schedule. Existing
// classes are untouched; the reconciliation report is how schedule
// edits and the calendar get squared up afterwards.
func (s *StudentService) UpdateSchedule(ctx context.Context, id int64, slots []model.RecurringSlot) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("student %d: %w", id, ErrNotFound)
	}
	if msg := schedule.ValidateSlots(slots); msg != "" {
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	if err := s.studentRepo.UpdateSchedule(ctx, id, slots); err != nil {
		return err
	}

	s.logger.Info("Student schedule updated",
		zap.Int64("student_id", id),
		zap.Int("slots", len(slots)))

	return nil
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("student %d: %w", id, ErrNotFound)
	}

	return s.studentRepo.Delete(ctx, id)
}

// newAccessCode returns a short code like "a3f9c2d1" for portal login.
// Backed by a UUID so collisions are a non-issue at this scale; the
// unique constraint on the column catches the absurd case.
func newAccessCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
