package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPunishmentOptionDefaults(t *testing.T) {
	active := false

	tests := []struct {
		name         string
		req          punishmentOptionRequest
		wantSeverity string
		wantActive   bool
	}{
		{
			name:         "omitted severity defaults to mild",
			req:          punishmentOptionRequest{Label: "extra homework", Weight: 3},
			wantSeverity: "mild",
			wantActive:   true,
		},
		{
			name:         "explicit severity kept",
			req:          punishmentOptionRequest{Label: "essay", Weight: 1, Severity: "harsh"},
			wantSeverity: "harsh",
			wantActive:   true,
		},
		{
			name:         "explicit inactive kept",
			req:          punishmentOptionRequest{Label: "retired", Weight: 2, IsActive: &active},
			wantSeverity: "mild",
			wantActive:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option := tt.req.toOption(7)
			assert.Equal(t, int64(7), option.ID)
			assert.Equal(t, tt.wantSeverity, option.Severity)
			assert.Equal(t, tt.wantActive, option.IsActive)
		})
	}
}

// Create and update must store the same thing for the same payload; an
// update omitting severity may not blank what create would have set.
func TestPunishmentOptionCreateUpdateAgree(t *testing.T) {
	req := punishmentOptionRequest{Label: "extra homework", Weight: 3}

	created := req.toOption(0)
	updated := req.toOption(9)

	assert.Equal(t, created.Severity, updated.Severity)
	assert.Equal(t, created.IsActive, updated.IsActive)
	assert.Equal(t, "mild", updated.Severity)
}
