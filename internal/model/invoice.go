package model

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// InvoiceItem is one line of an invoice, derived from a class at build
// time. Items are stored as JSON on the invoice row so later edits to
// the class do not rewrite history.
type InvoiceItem struct {
	ClassID         int64     `json:"class_id"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int       `json:"price_cents"`
}

type Invoice struct {
	ID            int64         `json:"id"`
	StudentID     int64         `json:"student_id"`
	Month         string        `json:"month"` // "YYYY-MM"
	SerialNumber  string        `json:"serial_number"`
	Status        InvoiceStatus `json:"status"`
	Items         []InvoiceItem `json:"items"`
	SubtotalCents int           `json:"subtotal_cents"`
	TaxCents      int           `json:"tax_cents"`
	TotalCents    int           `json:"total_cents"`
	IssuedAt      *time.Time    `json:"issued_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}
