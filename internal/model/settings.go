package model

import "time"

// Settings is the single business-wide configuration row (id is always 1).
type Settings struct {
	BusinessName     string    `json:"business_name"`
	BusinessEmail    string    `json:"business_email"`
	InvoicePrefix    string    `json:"invoice_prefix"`     // e.g. "INV-2026-"
	TaxRatePercent   float64   `json:"tax_rate_percent"`   // applied on invoice issue
	ReminderTemplate string    `json:"reminder_template"`  // %s placeholders: student, date, time
	UpdatedAt        time.Time `json:"updated_at"`
}
