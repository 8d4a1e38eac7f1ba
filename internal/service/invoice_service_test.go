package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/model"
)

func TestComputeTotals(t *testing.T) {
	items := []model.InvoiceItem{
		{PriceCents: 2500},
		{PriceCents: 2500},
		{PriceCents: 3750},
	}

	tests := []struct {
		name         string
		rate         float64
		wantSubtotal int
		wantTax      int
		wantTotal    int
	}{
		{"no tax", 0, 8750, 0, 8750},
		{"21 percent", 21, 8750, 1838, 10588}, // 1837.5 rounds up
		{"10 percent", 10, 8750, 875, 9625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax, total := ComputeTotals(items, tt.rate)
			assert.Equal(t, tt.wantSubtotal, subtotal)
			assert.Equal(t, tt.wantTax, tax)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	subtotal, tax, total := ComputeTotals(nil, 21)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), to) // leap year

	_, _, err = MonthRange("02-2024")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = MonthRange("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSerialNumber(t *testing.T) {
	tests := []struct {
		prefix string
		year   int
		seq    int
		want   string
	}{
		{"INV-", 2026, 1, "INV-2026-0001"},
		{"INV-", 2026, 42, "INV-2026-0042"},
		{"ACM-", 2027, 9999, "ACM-2027-9999"},
		{"INV-", 2027, 10000, "INV-2027-10000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SerialNumber(tt.prefix, tt.year, tt.seq))
	}
}

// A draft created in one year and issued in the next belongs to the
// issue year's sequence: the serial must carry the issue year, and the
// per-year counter keys on issued_at, so both sides agree.
func TestSerialNumberUsesIssueYear(t *testing.T) {
	drafted := time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC)
	issued := time.Date(2027, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NotEqual(t, drafted.Year(), issued.Year())

	serial := SerialNumber("INV-", issued.Year(), 1)
	assert.Equal(t, "INV-2027-0001", serial)
}
