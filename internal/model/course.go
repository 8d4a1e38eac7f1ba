package model

import "time"

type Course struct {
	ID                      int64     `json:"id"`
	Name                    string    `json:"name"`
	Subject                 string    `json:"subject"`
	PricePerHourCents       int       `json:"price_per_hour_cents"`
	SharedPricePerHourCents int       `json:"shared_price_per_hour_cents"` // reduced rate for shared classes
	DefaultDurationMinutes  int       `json:"default_duration_minutes"`
	Color                   string    `json:"color"` // calendar display color, e.g. "#4f86c6"
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
}

// PriceFor computes the price of a class of the given length, using the
// shared-class rate when shared is true. The result is frozen on the
// class row at creation time and never recomputed.
func (c *Course) PriceFor(durationMinutes int, shared bool) int {
	rate := c.PricePerHourCents
	if shared && c.SharedPricePerHourCents > 0 {
		rate = c.SharedPricePerHourCents
	}
	return rate * durationMinutes / 60
}
