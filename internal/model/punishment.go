package model

import "time"

// PunishmentOption is one wedge of the portal's punishment roulette.
// Weight skews the draw; zero-weight options never come up.
type PunishmentOption struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	Weight    int       `json:"weight"`
	Severity  string    `json:"severity"` // "mild" | "medium" | "harsh"
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PunishmentSpin records one roulette result for a student. The label
// is copied so history survives option edits.
type PunishmentSpin struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	OptionID  int64     `json:"option_id"`
	Label     string    `json:"label"`
	SpunAt    time.Time `json:"spun_at"`
}
