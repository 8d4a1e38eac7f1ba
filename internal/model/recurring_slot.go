package model

// RecurringSlot is one entry of a student's declared weekly schedule.
// It names a weekday and a time range but no concrete date; the
// reconciliation engine expands it into dated classes.
type RecurringSlot struct {
	DayOfWeek int    `json:"day_of_week"` // ISO numbering: 1 = Monday .. 7 = Sunday
	StartTime string `json:"start_time"`  // "HH:MM", local time
	EndTime   string `json:"end_time"`    // "HH:MM", must be after StartTime
	Subject   string `json:"subject,omitempty"`
	CourseID  int64  `json:"course_id"`
}
