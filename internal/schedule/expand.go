package schedule

import (
	"time"

	"tutordesk/internal/model"
)

// Occurrence is a dated class implied by a recurring slot but not yet
// persisted anywhere.
type Occurrence struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Subject   string    `json:"subject,omitempty"`
	CourseID  int64     `json:"course_id"`
}

// DurationMinutes returns the slot length, or 0 for malformed times.
func (o Occurrence) DurationMinutes() int {
	start, ok := ClockMinutes(o.StartTime)
	if !ok {
		return 0
	}
	end, ok := ClockMinutes(o.EndTime)
	if !ok || end <= start {
		return 0
	}
	return end - start
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ExpandSlots walks every date in [rangeStart, rangeEnd] (inclusive) and
// emits one occurrence per recurring slot whose weekday matches. Dates
// before the enrollment date are never expanded: the student was not
// enrolled yet, so the schedule implies nothing there.
func ExpandSlots(slots []model.RecurringSlot, rangeStart, rangeEnd, enrollment time.Time) []Occurrence {
	start := DateOnly(rangeStart)
	end := DateOnly(rangeEnd)
	if enrolled := DateOnly(enrollment); enrolled.After(start) {
		start = enrolled
	}

	var out []Occurrence
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := ISOWeekday(d)
		for _, slot := range slots {
			if slot.DayOfWeek != day {
				continue
			}
			out = append(out, Occurrence{
				Date:      d,
				StartTime: NormalizeClock(slot.StartTime),
				EndTime:   NormalizeClock(slot.EndTime),
				Subject:   slot.Subject,
				CourseID:  slot.CourseID,
			})
		}
	}
	return out
}

// SlotsOverlap reports whether two recurring slots collide on the same
// weekday. Used to validate a student's schedule before saving it.
func SlotsOverlap(a, b model.RecurringSlot) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}
	aStart, ok := ClockMinutes(a.StartTime)
	if !ok {
		return false
	}
	aEnd, ok := ClockMinutes(a.EndTime)
	if !ok {
		return false
	}
	bStart, ok := ClockMinutes(b.StartTime)
	if !ok {
		return false
	}
	bEnd, ok := ClockMinutes(b.EndTime)
	if !ok {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ValidateSlots checks a whole declared schedule: times must parse, end
// must be after start, and no two slots may overlap on the same day.
// Returns the offending description or "" when valid.
func ValidateSlots(slots []model.RecurringSlot) string {
	for i, s := range slots {
		if s.DayOfWeek < 1 || s.DayOfWeek > 7 {
			return "day_of_week must be 1 (Monday) through 7 (Sunday)"
		}
		start, ok := ClockMinutes(s.StartTime)
		if !ok {
			return "start_time must be HH:MM"
		}
		end, ok := ClockMinutes(s.EndTime)
		if !ok {
			return "end_time must be HH:MM"
		}
		if end <= start {
			return "end_time must be after start_time"
		}
		for j := 0; j < i; j++ {
			if SlotsOverlap(slots[j], s) {
				return "slots overlap on " + ISOWeekdayName(s.DayOfWeek)
			}
		}
	}
	return ""
}
