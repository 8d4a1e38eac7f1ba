package model

import "time"

type ClassStatus string

const (
	ClassStatusScheduled ClassStatus = "scheduled"
	ClassStatusCompleted ClassStatus = "completed"
	ClassStatusCancelled ClassStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Class is a concrete dated occurrence on the calendar, either
// materialized from a recurring slot (IsRecurring) or created ad hoc.
// At most one class may exist per (student, date, start time); the
// database enforces this with a unique constraint.
type Class struct {
	ID              int64         `json:"id"`
	StudentID       int64         `json:"student_id"`
	CourseID        int64         `json:"course_id"`
	Date            time.Time     `json:"date"`       // date only, midnight local
	StartTime       string        `json:"start_time"` // "HH:MM"
	EndTime         string        `json:"end_time"`   // "HH:MM"
	DurationMinutes int           `json:"duration_minutes"`
	IsRecurring     bool          `json:"is_recurring"`
	Status          ClassStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PriceCents      int           `json:"price_cents"` // frozen at creation, see Course.PriceFor
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Joined for API responses, not stored on the row
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
