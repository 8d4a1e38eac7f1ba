package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tutordesk/internal/mailer"
	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/schedule"
)

// NotificationService composes and sends class reminders. Email goes
// through the configured Mailer; WhatsApp stays a prefilled share link
// the teacher opens themselves, no gateway involved.
type NotificationService struct {
	studentRepo  *repository.StudentRepository
	classRepo    *repository.ClassRepository
	settingsRepo *repository.SettingsRepository
	mail         mailer.Mailer
	logger       *zap.Logger
}

func NewNotificationService(
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	settingsRepo *repository.SettingsRepository,
	mail mailer.Mailer,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		studentRepo:  studentRepo,
		classRepo:    classRepo,
		settingsRepo: settingsRepo,
		mail:         mail,
		logger:       logger,
	}
}

// ReminderOutcome mirrors the batch-with-per-item-result shape of
// materialization: one student failing to receive mail never aborts
// the rest.
type ReminderOutcome struct {
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"` // students without an email address
	Errors  int      `json:"errors"`
	Details []string `json:"details"`
}

// SendRemindersFor emails every student with a class on the given date.
func (s *NotificationService) SendRemindersFor(ctx context.Context, date time.Time) (*ReminderOutcome, error) {
	day := schedule.DateOnly(date)
	classes, err := s.classRepo.List(ctx, repository.ClassFilter{
		From:   &day,
		To:     &day,
		Status: model.ClassStatusScheduled,
	})
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	template := "Hi %s, reminder: you have class on %s at %s."
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if settings != nil && settings.ReminderTemplate != "" {
		template = settings.ReminderTemplate
	}

	outcome := &ReminderOutcome{Details: []string{}}
	for _, class := range classes {
		student, err := s.studentRepo.GetByID(ctx, class.StudentID)
		if err != nil || student == nil {
			outcome.Errors++
			outcome.Details = append(outcome.Details, fmt.Sprintf("student %d: not found", class.StudentID))
			continue
		}
		if student.Email == "" {
			outcome.Skipped++
			outcome.Details = append(outcome.Details, fmt.Sprintf("%s: no email address", student.Name))
			continue
		}

		msg := mailer.Message{
			To:       student.Email,
			Subject:  "Class reminder",
			TextBody: fmt.Sprintf(template, student.Name, day.Format("2006-01-02"), class.StartTime),
		}
		if err := s.mail.Send(ctx, msg); err != nil {
			s.logger.Error("Failed to send reminder",
				zap.Int64("student_id", student.ID),
				zap.Error(err))
			outcome.Errors++
			outcome.Details = append(outcome.Details, fmt.Sprintf("%s: send failed", student.Name))
			continue
		}
		outcome.Sent++
	}

	s.logger.Info("Reminders sent",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("sent", outcome.Sent),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("errors", outcome.Errors))

	return outcome, nil
}

// WhatsAppLink builds a wa.me URL with the reminder text prefilled for
// one class. The teacher opens it; nothing is sent server side.
func (s *NotificationService) WhatsAppLink(ctx context.Context, classID int64) (string, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return "", err
	}
	if class == nil {
		return "", fmt.Errorf("class %d: %w", classID, ErrNotFound)
	}

	student, err := s.studentRepo.GetByID(ctx, class.StudentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", fmt.Errorf("student %d: %w", class.StudentID, ErrNotFound)
	}

	phone := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, student.Phone)
	if phone == "" {
		return "", fmt.Errorf("%w: student has no phone number", ErrValidation)
	}

	text := fmt.Sprintf("Hi %s! Reminder: class on %s at %s.",
		student.Name, class.Date.Format("2006-01-02"), class.StartTime)

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text), nil
}
