package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID                int64           `json:"id"`
	PublicID          uuid.UUID       `json:"public_id"` // used in portal URLs instead of the serial id
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	GuardianName      string          `json:"guardian_name"`
	GuardianPhone     string          `json:"guardian_phone"`
	StartDate         *time.Time      `json:"start_date"` // enrollment date; may be missing on old records
	IsActive          bool            `json:"is_active"`
	UsesSharedPricing bool            `json:"uses_shared_pricing"` // shared-class rate instead of the standard one
	CourseID          *int64          `json:"course_id"`           // default course for new classes
	AvatarURL         string          `json:"avatar_url"`
	FixedSchedule     []RecurringSlot `json:"fixed_schedule"`
	AccessCode        string          `json:"-"` // portal login code, never serialized
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
