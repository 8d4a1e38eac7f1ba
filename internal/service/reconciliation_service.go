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

// ReconciliationService compares declared fixed schedules against the
// classes actually on the calendar and materializes teacher-selected
// gaps into real class rows.
type ReconciliationService struct {
	studentRepo *repository.StudentRepository
	courseRepo  *repository.CourseRepository
	classRepo   *repository.ClassRepository
	logger      *zap.Logger
}

func NewReconciliationService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	classRepo *repository.ClassRepository,
	logger *zap.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		classRepo:   classRepo,
		logger:      logger,
	}
}

// CompareStudent builds the reconciliation report for one student over
// [from, to]. A student without a declared schedule or enrollment date
// is reported as skipped with a reason; treating them as "zero
// expected" would show up as a misleading clean diff.
func (s *ReconciliationService) CompareStudent(ctx context.Context, studentID int64, from, to time.Time) (*model.StudentReconciliation, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	return s.compare(ctx, student, from, to), nil
}

// CompareAll runs the report for every active student. One malformed
// student never blocks the rest: their entry carries a skipped or error
// status instead.
func (s *ReconciliationService) CompareAll(ctx context.Context, from, to time.Time) ([]*model.StudentReconciliation, error) {
	students, err := s.studentRepo.GetAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}

	results := make([]*model.StudentReconciliation, 0, len(students))
	for _, student := range students {
		results = append(results, s.compare(ctx, student, from, to))
	}

	return results, nil
}

func (s *ReconciliationService) compare(ctx context.Context, student *model.Student, from, to time.Time) *model.StudentReconciliation {
	res := &model.StudentReconciliation{
		StudentID:   student.ID,
		StudentName: student.Name,
		Status:      model.ReconciliationOK,
		Missing:     []model.Class{},
		Extra:       []model.Class{},
	}

	if student.StartDate == nil {
		res.Status = model.ReconciliationSkipped
		res.Reason = "student has no enrollment start date"
		return res
	}
	if len(student.FixedSchedule) == 0 {
		res.Status = model.ReconciliationSkipped
		res.Reason = "student has no declared fixed schedule"
		return res
	}

	expected := schedule.ExpandSlots(student.FixedSchedule, from, to, *student.StartDate)

	actual, err := s.classRepo.GetByStudentAndRange(ctx, student.ID, schedule.DateOnly(from), schedule.DateOnly(to))
	if err != nil {
		s.logger.Error("Failed to load classes for reconciliation",
			zap.Int64("student_id", student.ID),
			zap.Error(err))
		res.Status = model.ReconciliationError
		res.Reason = "could not load classes"
		return res
	}

	classes := make([]model.Class, 0, len(actual))
	for _, c := range actual {
		classes = append(classes, *c)
	}

	diff := schedule.Diff(expected, classes)
	res.ExpectedCount = diff.ExpectedCount
	res.ActualCount = diff.ActualCount
	res.MatchCount = diff.MatchCount
	res.Extra = diff.Extra

	// Missing entries go out as synthesized, unsaved classes so the
	// comparison modal can render them like any other calendar entry.
	for _, o := range diff.Missing {
		res.Missing = append(res.Missing, model.Class{
			StudentID:       student.ID,
			CourseID:        o.CourseID,
			Date:            o.Date,
			StartTime:       o.StartTime,
			EndTime:         o.EndTime,
			DurationMinutes: o.DurationMinutes(),
			IsRecurring:     true,
			Status:          model.ClassStatusScheduled,
			PaymentStatus:   model.PaymentStatusUnpaid,
		})
	}

	return res
}

// Materialize persists a teacher-selected subset of missing occurrences
// as real classes. Each insert stands alone: a duplicate key (another
// request got there first) is a skip, any other failure an error item,
// and the batch always runs to the end.
func (s *ReconciliationService) Materialize(ctx context.Context, studentID int64, occurrences []schedule.Occurrence) (*model.MaterializeOutcome, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	courses := make(map[int64]*model.Course)

	outcome := &model.MaterializeOutcome{Items: []model.MaterializeItem{}}
	for _, o := range occurrences {
		item := model.MaterializeItem{
			Date:      o.Date.Format("2006-01-02"),
			StartTime: schedule.NormalizeClock(o.StartTime),
		}

		duration := o.DurationMinutes()
		if duration <= 0 {
			item.Result = model.MaterializeError
			item.Reason = "invalid time range"
			outcome.Errors++
			outcome.Items = append(outcome.Items, item)
			continue
		}

		course, ok := courses[o.CourseID]
		if !ok {
			course, err = s.courseRepo.GetByID(ctx, o.CourseID)
			if err != nil || course == nil {
				item.Result = model.MaterializeError
				item.Reason = "course not found"
				outcome.Errors++
				outcome.Items = append(outcome.Items, item)
				continue
			}
			courses[o.CourseID] = course
		}

		class := &model.Class{
			StudentID:       student.ID,
			CourseID:        course.ID,
			Date:            schedule.DateOnly(o.Date),
			StartTime:       schedule.NormalizeClock(o.StartTime),
			EndTime:         schedule.NormalizeClock(o.EndTime),
			DurationMinutes: duration,
			IsRecurring:     true,
			Status:          model.ClassStatusScheduled,
			PaymentStatus:   model.PaymentStatusUnpaid,
			// Priced from the course's current rates, then frozen.
			PriceCents: course.PriceFor(duration, student.UsesSharedPricing),
		}

		err = s.classRepo.Create(ctx, class)
		switch {
		case err == nil:
			item.Result = model.MaterializeCreated
			outcome.Created++
		case base.IsUniqueViolation(err):
			item.Result = model.MaterializeSkipped
			item.Reason = "class already exists"
			outcome.Skipped++
		default:
			s.logger.Error("Failed to materialize class",
				zap.Int64("student_id", student.ID),
				zap.String("date", item.Date),
				zap.Error(err))
			item.Result = model.MaterializeError
			item.Reason = "insert failed"
			outcome.Errors++
		}
		outcome.Items = append(outcome.Items, item)
	}

	s.logger.Info("Materialization finished",
		zap.Int64("student_id", studentID),
		zap.Int("created", outcome.Created),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("errors", outcome.Errors))

	return outcome, nil
}
