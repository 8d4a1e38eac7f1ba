package rest

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/service"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("student 7: %w", service.ErrNotFound), fiber.StatusNotFound},
		{"validation", fmt.Errorf("%w: bad slot", service.ErrValidation), fiber.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: duplicate class", service.ErrConflict), fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapServiceError(tt.err)
			require.NotNil(t, mapped)
			assert.Equal(t, tt.wantCode, mapped.Code)
		})
	}

	assert.Nil(t, MapServiceError(fmt.Errorf("connection refused")))
}

// Validation failures must be rejected before any service is touched;
// the handlers here carry nil services to prove it.
func TestRequestValidation(t *testing.T) {
	app := fiber.New()
	h := &Handlers{}
	h.registerStudents(app.Group("/api"))
	h.registerClasses(app.Group("/api"))

	tests := []struct {
		name string
		path string
		body string
	}{
		{"student without name", "/api/students", `{"email":"kid@example.com"}`},
		{"student with bad email", "/api/students", `{"name":"Ana","email":"nope"}`},
		{"student with bad start date", "/api/students", `{"name":"Ana","start_date":"15-01-2026"}`},
		{"student with out-of-range weekday", "/api/students", `{"name":"Ana","fixed_schedule":[{"day_of_week":8,"start_time":"16:00","end_time":"17:00","course_id":1}]}`},
		{"class without student", "/api/classes", `{"course_id":1,"date":"2026-01-15","start_time":"16:00","end_time":"17:00"}`},
		{"class with bad date", "/api/classes", `{"student_id":1,"course_id":1,"date":"Jan 15","start_time":"16:00","end_time":"17:00"}`},
		{"malformed json", "/api/classes", `{"student_id":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	h := &Handlers{}
	h.registerStudents(app.Group("/api"))

	req := httptest.NewRequest("DELETE", "/api/students/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
