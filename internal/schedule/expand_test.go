package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutordesk/internal/model"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpandSlotsWeeklyCount(t *testing.T) {
	// One Monday slot over a two-week range starting on a Monday:
	// exactly the Mondays in range.
	slots := []model.RecurringSlot{
		{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00", CourseID: 1},
	}
	got := ExpandSlots(slots, date("2024-01-01"), date("2024-01-15"), date("2024-01-01"))

	assert.Len(t, got, 3)
	assert.Equal(t, date("2024-01-01"), got[0].Date)
	assert.Equal(t, date("2024-01-08"), got[1].Date)
	assert.Equal(t, date("2024-01-15"), got[2].Date)
	for _, o := range got {
		assert.Equal(t, "16:00", o.StartTime)
		assert.Equal(t, "17:00", o.EndTime)
		assert.Equal(t, 60, o.DurationMinutes())
	}
}

func TestExpandSlotsEnrollmentCutoff(t *testing.T) {
	// Range starts before enrollment; nothing may be expanded for dates
	// the student was not enrolled on.
	slots := []model.RecurringSlot{
		{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"},
	}
	got := ExpandSlots(slots, date("2023-12-01"), date("2024-01-15"), date("2024-01-05"))

	assert.Len(t, got, 2) // Jan 8 and Jan 15 only
	for _, o := range got {
		assert.False(t, o.Date.Before(date("2024-01-05")), "occurrence %s precedes enrollment", o.Date)
	}
}

func TestExpandSlotsMultipleDays(t *testing.T) {
	slots := []model.RecurringSlot{
		{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"},
		{DayOfWeek: 3, StartTime: "10:00:00", EndTime: "11:30:00"}, // seconds get stripped
	}
	// 2024-01-01 (Mon) .. 2024-01-07 (Sun): one Monday, one Wednesday.
	got := ExpandSlots(slots, date("2024-01-01"), date("2024-01-07"), date("2024-01-01"))

	assert.Len(t, got, 2)
	assert.Equal(t, "16:00", got[0].StartTime)
	assert.Equal(t, "10:00", got[1].StartTime)
	assert.Equal(t, "11:30", got[1].EndTime)
	assert.Equal(t, 90, got[1].DurationMinutes())
}

func TestExpandSlotsEmptySchedule(t *testing.T) {
	got := ExpandSlots(nil, date("2024-01-01"), date("2024-12-31"), date("2024-01-01"))
	assert.Empty(t, got)
}

func TestExpandSlotsRangeEntirelyBeforeEnrollment(t *testing.T) {
	slots := []model.RecurringSlot{{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"}}
	got := ExpandSlots(slots, date("2024-01-01"), date("2024-01-31"), date("2024-06-01"))
	assert.Empty(t, got)
}

func TestValidateSlots(t *testing.T) {
	tests := []struct {
		name    string
		slots   []model.RecurringSlot
		wantErr bool
	}{
		{
			name: "valid two-day schedule",
			slots: []model.RecurringSlot{
				{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"},
				{DayOfWeek: 3, StartTime: "16:00", EndTime: "17:00"},
			},
		},
		{
			name: "same day back to back is fine",
			slots: []model.RecurringSlot{
				{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"},
				{DayOfWeek: 1, StartTime: "17:00", EndTime: "18:00"},
			},
		},
		{
			name: "overlap on same day",
			slots: []model.RecurringSlot{
				{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00"},
				{DayOfWeek: 1, StartTime: "16:30", EndTime: "17:30"},
			},
			wantErr: true,
		},
		{
			name:    "end before start",
			slots:   []model.RecurringSlot{{DayOfWeek: 1, StartTime: "17:00", EndTime: "16:00"}},
			wantErr: true,
		},
		{
			name:    "bad weekday",
			slots:   []model.RecurringSlot{{DayOfWeek: 0, StartTime: "16:00", EndTime: "17:00"}},
			wantErr: true,
		},
		{
			name:    "unparseable time",
			slots:   []model.RecurringSlot{{DayOfWeek: 1, StartTime: "4pm", EndTime: "17:00"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateSlots(tt.slots)
			if (msg != "") != tt.wantErr {
				t.Errorf("ValidateSlots() = %q, wantErr %v", msg, tt.wantErr)
			}
		})
	}
}
