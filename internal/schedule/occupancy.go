package schedule

import (
	"time"

	"tutordesk/internal/model"
)

type OccupantKind string

const (
	OccupantClass OccupantKind = "class" // a persisted dated class
	OccupantGhost OccupantKind = "ghost" // projection of a recurring slot, not yet materialized
)

// CellOccupant is what the calendar grid shows in one time cell.
type CellOccupant struct {
	Kind  OccupantKind        `json:"kind"`
	Class *model.Class        `json:"class,omitempty"`
	Slot  *model.RecurringSlot `json:"slot,omitempty"`
}

// GhostKey identifies a recurring-slot projection for one date, the key
// clients use to hide a dismissed ghost for a specific week.
func GhostKey(date time.Time, startTime string) string {
	return date.Format("2006-01-02") + "|" + NormalizeClock(startTime)
}

// OccupantAt resolves which single entry occupies the cell at
// queryMinutes (minutes since midnight) on the given date. Persisted
// classes win over ghosts; ghosts whose key is in hidden are dismissed
// for this week. Containment is start <= query < end. A linear scan is
// fine at this scale.
func OccupantAt(date time.Time, queryMinutes int, classes []model.Class, slots []model.RecurringSlot, hidden map[string]bool) *CellOccupant {
	for i := range classes {
		c := &classes[i]
		if !sameDate(c.Date, date) || c.Status == model.ClassStatusCancelled {
			continue
		}
		if containsMinute(c.StartTime, c.EndTime, queryMinutes) {
			return &CellOccupant{Kind: OccupantClass, Class: c}
		}
	}

	day := ISOWeekday(date)
	for i := range slots {
		s := &slots[i]
		if s.DayOfWeek != day || hidden[GhostKey(date, s.StartTime)] {
			continue
		}
		if containsMinute(s.StartTime, s.EndTime, queryMinutes) {
			return &CellOccupant{Kind: OccupantGhost, Slot: s}
		}
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func containsMinute(startTime, endTime string, minute int) bool {
	start, ok := ClockMinutes(startTime)
	if !ok {
		return false
	}
	end, ok := ClockMinutes(endTime)
	if !ok {
		return false
	}
	return start <= minute && minute < end
}
