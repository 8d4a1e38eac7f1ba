package schedule

import "time"

// The stored convention for day_of_week is ISO: 1 = Monday .. 7 = Sunday.
// Go's time.Weekday is 0 = Sunday. Every conversion between the two goes
// through these two functions; nothing else in the codebase may do its
// own weekday arithmetic.

// ISOWeekday returns the ISO day-of-week (1..7, Monday first) of t.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DayIndex places date into the 7-day window starting at weekStart,
// returning 0..6 and true, or false when the date falls outside. Dates
// are compared by calendar label so values in different locations (a
// scanned DATE column is UTC midnight, a parsed query param is not
// necessarily) still land on the right day.
func DayIndex(date, weekStart time.Time) (int, bool) {
	label := date.Format("2006-01-02")
	for i := 0; i < 7; i++ {
		if weekStart.AddDate(0, 0, i).Format("2006-01-02") == label {
			return i, true
		}
	}
	return 0, false
}

// ISOWeekdayName returns the English name for an ISO day-of-week.
func ISOWeekdayName(day int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if day >= 1 && day <= 7 {
		return names[day-1]
	}
	return "?"
}
