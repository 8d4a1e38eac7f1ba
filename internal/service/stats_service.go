package service

import (
	"context"
	"fmt"

	"tutordesk/internal/repository"
)

type StatsService struct {
	classRepo   *repository.ClassRepository
	studentRepo *repository.StudentRepository
}

func NewStatsService(classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository) *StatsService {
	return &StatsService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// MonthSummary is the dashboard headline for one month.
type MonthSummary struct {
	Month          string                          `json:"month"`
	ActiveStudents int                             `json:"active_students"`
	ClassCount     int                             `json:"class_count"`
	CompletedCount int                             `json:"completed_count"`
	CancelledCount int                             `json:"cancelled_count"`
	TotalHours     float64                         `json:"total_hours"`
	RevenueCents   int                             `json:"revenue_cents"`
	UnpaidCents    int                             `json:"unpaid_cents"`
	PerCourse      []*repository.MonthlySummaryRow `json:"per_course"`
}

// Summary aggregates one month of classes for the dashboard.
func (s *StatsService) Summary(ctx context.Context, month string) (*MonthSummary, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.classRepo.MonthlySummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}

	summary := &MonthSummary{
		Month:          month,
		ActiveStudents: len(students),
		PerCourse:      rows,
	}
	totalMinutes := 0
	for _, row := range rows {
		summary.ClassCount += row.ClassCount
		summary.CompletedCount += row.CompletedCount
		summary.CancelledCount += row.CancelledCount
		summary.RevenueCents += row.RevenueCents
		summary.UnpaidCents += row.UnpaidCents
		totalMinutes += row.TotalMinutes
	}
	summary.TotalHours = float64(totalMinutes) / 60

	return summary, nil
}
