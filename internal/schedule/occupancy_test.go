package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/model"
)

func TestOccupantAtPrefersClassOverGhost(t *testing.T) {
	monday := date("2024-01-01")
	classes := []model.Class{recurringClass("2024-01-01", "16:00", "17:00")}
	slots := mondaySlot()

	q, _ := ClockMinutes("16:30")
	occ := OccupantAt(monday, q, classes, slots, nil)

	require.NotNil(t, occ)
	assert.Equal(t, OccupantClass, occ.Kind)
	assert.NotNil(t, occ.Class)
}

func TestOccupantAtGhostWhenNoClass(t *testing.T) {
	monday := date("2024-01-01")

	q, _ := ClockMinutes("16:00")
	occ := OccupantAt(monday, q, nil, mondaySlot(), nil)

	require.NotNil(t, occ)
	assert.Equal(t, OccupantGhost, occ.Kind)
	assert.NotNil(t, occ.Slot)
}

func TestOccupantAtHiddenGhost(t *testing.T) {
	monday := date("2024-01-01")
	hidden := map[string]bool{GhostKey(monday, "16:00"): true}

	q, _ := ClockMinutes("16:15")
	occ := OccupantAt(monday, q, nil, mondaySlot(), hidden)

	assert.Nil(t, occ)
}

func TestOccupantAtBoundaries(t *testing.T) {
	monday := date("2024-01-01")
	slots := mondaySlot()

	tests := []struct {
		clock    string
		occupied bool
	}{
		{"15:45", false},
		{"16:00", true}, // start inclusive
		{"16:45", true},
		{"17:00", false}, // end exclusive
	}
	for _, tt := range tests {
		q, ok := ClockMinutes(tt.clock)
		require.True(t, ok)
		occ := OccupantAt(monday, q, nil, slots, nil)
		assert.Equal(t, tt.occupied, occ != nil, "at %s", tt.clock)
	}
}

func TestOccupantAtSkipsCancelledAndOtherDays(t *testing.T) {
	monday := date("2024-01-01")
	cancelled := recurringClass("2024-01-01", "16:00", "17:00")
	cancelled.Status = model.ClassStatusCancelled
	tuesday := recurringClass("2024-01-02", "16:00", "17:00")

	q, _ := ClockMinutes("16:30")
	occ := OccupantAt(monday, q, []model.Class{cancelled, tuesday}, nil, nil)

	assert.Nil(t, occ)

	// The ghost shows through where the only class is cancelled.
	occ = OccupantAt(monday, q, []model.Class{cancelled}, mondaySlot(), nil)
	require.NotNil(t, occ)
	assert.Equal(t, OccupantGhost, occ.Kind)
}
