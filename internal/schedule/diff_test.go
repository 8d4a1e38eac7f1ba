package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutordesk/internal/model"
)

func mondaySlot() []model.RecurringSlot {
	return []model.RecurringSlot{{DayOfWeek: 1, StartTime: "16:00", EndTime: "17:00", CourseID: 1}}
}

func recurringClass(dateStr, start, end string) model.Class {
	return model.Class{
		StudentID:   1,
		Date:        date(dateStr),
		StartTime:   start,
		EndTime:     end,
		IsRecurring: true,
		Status:      model.ClassStatusScheduled,
	}
}

func TestDiffReportsMissing(t *testing.T) {
	// Enrolled 2024-01-01 (a Monday), slot Mon 16:00-17:00, range
	// Jan 1..15. Jan 1 and Jan 8 exist; Jan 15 must be missing.
	expected := ExpandSlots(mondaySlot(), date("2024-01-01"), date("2024-01-15"), date("2024-01-01"))
	actual := []model.Class{
		recurringClass("2024-01-01", "16:00", "17:00"),
		recurringClass("2024-01-08", "16:00:00", "17:00:00"), // seconds must not break matching
	}

	res := Diff(expected, actual)

	assert.Equal(t, 3, res.ExpectedCount)
	assert.Equal(t, 2, res.ActualCount)
	assert.Equal(t, 2, res.MatchCount)
	assert.Empty(t, res.Extra)
	if assert.Len(t, res.Missing, 1) {
		assert.Equal(t, date("2024-01-15"), res.Missing[0].Date)
		assert.Equal(t, "16:00", res.Missing[0].StartTime)
	}
}

func TestDiffShiftedInstanceIsMissingAndExtra(t *testing.T) {
	// A persisted instance at 16:15 instead of 16:00: exact-key matching
	// reports the 16:00 expectation missing and the 16:15 row extra.
	expected := ExpandSlots(mondaySlot(), date("2024-01-01"), date("2024-01-01"), date("2024-01-01"))
	actual := []model.Class{recurringClass("2024-01-01", "16:15", "17:15")}

	res := Diff(expected, actual)

	assert.Equal(t, 0, res.MatchCount)
	if assert.Len(t, res.Missing, 1) {
		assert.Equal(t, "16:00", res.Missing[0].StartTime)
	}
	if assert.Len(t, res.Extra, 1) {
		assert.Equal(t, "16:15", res.Extra[0].StartTime)
	}
}

func TestDiffAdHocClassIsNeverExtra(t *testing.T) {
	adHoc := recurringClass("2024-01-02", "09:00", "10:00")
	adHoc.IsRecurring = false

	res := Diff(nil, []model.Class{adHoc})

	assert.Empty(t, res.Extra)
	assert.Equal(t, 1, res.ActualCount)
}

func TestDiffExtraAfterScheduleEdit(t *testing.T) {
	// Schedule was edited from Tuesday to Monday after a Tuesday class
	// had been materialized: the Tuesday row is extra, never deleted here.
	expected := ExpandSlots(mondaySlot(), date("2024-01-01"), date("2024-01-07"), date("2024-01-01"))
	actual := []model.Class{
		recurringClass("2024-01-01", "16:00", "17:00"),
		recurringClass("2024-01-02", "16:00", "17:00"),
	}

	res := Diff(expected, actual)

	assert.Equal(t, 1, res.MatchCount)
	assert.Empty(t, res.Missing)
	if assert.Len(t, res.Extra, 1) {
		assert.Equal(t, date("2024-01-02"), res.Extra[0].Date)
	}
}

func TestDiffMaterializeFixpoint(t *testing.T) {
	// Materializing everything missing and re-running the diff must
	// yield an empty missing list and match == expected.
	expected := ExpandSlots(mondaySlot(), date("2024-01-01"), date("2024-02-29"), date("2024-01-01"))
	actual := []model.Class{recurringClass("2024-01-01", "16:00", "17:00")}

	first := Diff(expected, actual)
	for _, o := range first.Missing {
		actual = append(actual, model.Class{
			StudentID:   1,
			Date:        o.Date,
			StartTime:   o.StartTime,
			EndTime:     o.EndTime,
			IsRecurring: true,
			Status:      model.ClassStatusScheduled,
		})
	}

	second := Diff(expected, actual)
	assert.Empty(t, second.Missing)
	assert.Empty(t, second.Extra)
	assert.Equal(t, second.ExpectedCount, second.MatchCount)
}
