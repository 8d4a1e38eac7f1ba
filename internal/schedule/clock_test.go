package schedule

import (
	"testing"
	"time"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"16:00", "16:00"},
		{"16:00:00", "16:00"},
		{"9:5", "09:05"},
		{" 08:30 ", "08:30"},
		{"23:59:59", "23:59"},
		{"24:00", "24:00"}, // invalid hour passes through untouched
		{"garbage", "garbage"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeClock(tt.in); got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"16:00", 960, true},
		{"16:15", 975, true},
		{"23:59", 1439, true},
		{"25:00", 0, false},
		{"12:61", 0, false},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		got, ok := ClockMinutes(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ClockMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMinutesClockRoundTrip(t *testing.T) {
	for _, m := range []int{0, 60, 975, 1439} {
		got, ok := ClockMinutes(MinutesClock(m))
		if !ok || got != m {
			t.Errorf("round trip of %d minutes gave (%d, %v)", m, got, ok)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1}, // Monday
		{"2024-01-06", 6}, // Saturday
		{"2024-01-07", 7}, // Sunday, Go's weekday 0
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := ISOWeekday(d); got != tt.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDayIndex(t *testing.T) {
	weekStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // Monday

	tests := []struct {
		name  string
		date  time.Time
		want  int
		inWk  bool
		start time.Time
	}{
		{"monday itself", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 0, true, weekStart},
		{"sunday end of week", time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), 6, true, weekStart},
		{"day before the week", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), 0, false, weekStart},
		{"day after the week", time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), 0, false, weekStart},
		{
			// A DATE column scans as UTC midnight while a defaulted week
			// start is local midnight; on a UTC-5 server plain duration
			// division would bin Tuesday's class under Monday.
			"utc date against local week start",
			time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			1, true,
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DayIndex(tt.date, tt.start)
			if ok != tt.inWk || got != tt.want {
				t.Errorf("DayIndex(%s, %s) = (%d, %v), want (%d, %v)",
					tt.date.Format("2006-01-02"), tt.start.Format("2006-01-02"), got, ok, tt.want, tt.inWk)
			}
		})
	}
}
