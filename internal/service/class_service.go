package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/repository/base"
	"tutordesk/internal/schedule"
)

type ClassService struct {
	studentRepo *repository.StudentRepository
	courseRepo  *repository.CourseRepository
	classRepo   *repository.ClassRepository
	logger      *zap.Logger
}

func NewClassService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	classRepo *repository.ClassRepository,
	logger *zap.Logger,
) *ClassService {
	return &ClassService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// Create validates and inserts one ad hoc or recurring class. Unlike
// batch materialization, a duplicate (student, date, start time) here
// is a user-facing conflict.
func (s *ClassService) Create(ctx context.Context, class *model.Class) (*model.Class, error) {
	student, err := s.studentRepo.GetByID(ctx, class.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", class.StudentID, ErrNotFound)
	}

	course, err := s.courseRepo.GetByID(ctx, class.CourseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course %d: %w", class.CourseID, ErrNotFound)
	}

	class.StartTime = schedule.NormalizeClock(class.StartTime)
	class.EndTime = schedule.NormalizeClock(class.EndTime)

	start, okStart := schedule.ClockMinutes(class.StartTime)
	end, okEnd := schedule.ClockMinutes(class.EndTime)
	if !okStart || !okEnd || end <= start {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	class.DurationMinutes = end - start
	class.Date = schedule.DateOnly(class.Date)

	if class.Status == "" {
		class.Status = model.ClassStatusScheduled
	}
	if class.PaymentStatus == "" {
		class.PaymentStatus = model.PaymentStatusUnpaid
	}
	// Price is frozen at creation; later course price edits never
	// touch existing classes.
	if class.PriceCents == 0 {
		class.PriceCents = course.PriceFor(class.DurationMinutes, student.UsesSharedPricing)
	}

	err = s.classRepo.Create(ctx, class)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a class already exists for this student at %s %s",
				ErrConflict, class.Date.Format("2006-01-02"), class.StartTime)
		}
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.logger.Info("Class created",
		zap.Int64("class_id", class.ID),
		zap.Int64("student_id", class.StudentID),
		zap.String("date", class.Date.Format("2006-01-02")),
		zap.String("start_time", class.StartTime),
		zap.Bool("is_recurring", class.IsRecurring))

	return class, nil
}

func (s *ClassService) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
	}
	return class, nil
}

func (s *ClassService) List(ctx context.Context, filter repository.ClassFilter) ([]*model.Class, error) {
	return s.classRepo.List(ctx, filter)
}

// Update rewrites a class. Moving it onto an occupied (date, start)
// pair trips the same unique constraint as creation.
func (s *ClassService) Update(ctx context.Context, class *model.Class) error {
	existing, err := s.classRepo.GetByID(ctx, class.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("class %d: %w", class.ID, ErrNotFound)
	}

	class.StartTime = schedule.NormalizeClock(class.StartTime)
	class.EndTime = schedule.NormalizeClock(class.EndTime)
	start, okStart := schedule.ClockMinutes(class.StartTime)
	end, okEnd := schedule.ClockMinutes(class.EndTime)
	if !okStart || !okEnd || end <= start {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	class.DurationMinutes = end - start
	class.Date = schedule.DateOnly(class.Date)

	err = s.classRepo.Update(ctx, class)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return fmt.Errorf("%w: a class already exists for this student at %s %s",
				ErrConflict, class.Date.Format("2006-01-02"), class.StartTime)
		}
		return err
	}

	return nil
}

func (s *ClassService) UpdateStatus(ctx context.Context, id int64, status model.ClassStatus) error {
	switch status {
	case model.ClassStatusScheduled, model.ClassStatusCompleted, model.ClassStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if class == nil {
		return fmt.Errorf("class %d: %w", id, ErrNotFound)
	}

	return s.classRepo.UpdateStatus(ctx, id, status)
}

func (s *ClassService) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	switch status {
	case model.PaymentStatusPaid, model.PaymentStatusUnpaid:
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if class == nil {
		return fmt.Errorf("class %d: %w", id, ErrNotFound)
	}

	return s.classRepo.UpdatePaymentStatus(ctx, id, status)
}

func (s *ClassService) Delete(ctx context.Context, id int64) error {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if class == nil {
		return fmt.Errorf("class %d: %w", id, ErrNotFound)
	}

	return s.classRepo.Delete(ctx, id)
}

// WeekDay is one column of the weekly calendar: the dated classes plus
// recurring-slot ghost projections not yet materialized and not hidden
// by the teacher for this week.
type WeekDay struct {
	Date    time.Time             `json:"date"`
	Weekday int                   `json:"weekday"` // ISO 1..7
	Classes []*model.Class        `json:"classes"`
	Ghosts  []schedule.Occurrence `json:"ghosts"`
}

// WeekView assembles seven days starting at weekStart. hidden carries
// the client's dismissed ghost keys (see schedule.GhostKey); those live
// in browser storage and are never persisted here.
func (s *ClassService) WeekView(ctx context.Context, weekStart time.Time, hidden map[string]bool) ([]*WeekDay, error) {
	weekStart = schedule.DateOnly(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	classes, err := s.classRepo.List(ctx, repository.ClassFilter{From: &weekStart, To: &weekEnd})
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	students, err := s.studentRepo.GetAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}

	days := make([]*WeekDay, 7)
	for i := range days {
		days[i] = &WeekDay{
			Date:    weekStart.AddDate(0, 0, i),
			Weekday: schedule.ISOWeekday(weekStart.AddDate(0, 0, i)),
			Classes: []*model.Class{},
			Ghosts:  []schedule.Occurrence{},
		}
	}

	occupied := make(map[string]bool, len(classes))
	for _, c := range classes {
		// Dates arrive in mixed locations (query param vs scanned DATE
		// column), so binning goes by date label, never by duration math.
		idx, ok := schedule.DayIndex(c.Date, weekStart)
		if !ok {
			continue
		}
		days[idx].Classes = append(days[idx].Classes, c)
		occupied[schedule.GhostKey(c.Date, c.StartTime)] = true
	}

	// Project each enrolled student's fixed schedule over the week; a
	// ghost disappears once a class occupies its exact key, or when the
	// teacher dismissed it for this week.
	for _, student := range students {
		if student.StartDate == nil || len(student.FixedSchedule) == 0 {
			continue
		}
		for _, o := range schedule.ExpandSlots(student.FixedSchedule, weekStart, weekEnd, *student.StartDate) {
			key := schedule.GhostKey(o.Date, o.StartTime)
			if occupied[key] || hidden[key] {
				continue
			}
			idx, ok := schedule.DayIndex(o.Date, weekStart)
			if !ok {
				continue
			}
			days[idx].Ghosts = append(days[idx].Ghosts, o)
		}
	}

	return days, nil
}
