package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/model"
)

type settingsStoreStub struct {
	settings *model.Settings
}

func (s *settingsStoreStub) Get(context.Context) (*model.Settings, error) {
	return s.settings, nil
}

func (s *settingsStoreStub) Update(_ context.Context, v *model.Settings) error {
	s.settings = v
	return nil
}

func newSettingsApp(store SettingsStore) *fiber.App {
	app := fiber.New()
	h := &Handlers{SettingsRepo: store}
	h.registerSettings(app.Group("/api"))
	return app
}

// A missing settings row is a broken database, not a panic: both verbs
// must come back as a plain 500.
func TestSettingsMissingRow(t *testing.T) {
	app := newSettingsApp(&settingsStoreStub{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := `{"business_name":"Acme Tutoring","invoice_prefix":"INV-","tax_rate_percent":21}`
	req := httptest.NewRequest("PUT", "/api/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSettingsUpdate(t *testing.T) {
	store := &settingsStoreStub{settings: &model.Settings{
		BusinessName:  "Old Name",
		InvoicePrefix: "INV-",
	}}
	app := newSettingsApp(store)

	body := `{"business_name":"Acme Tutoring","business_email":"billing@acme.test","invoice_prefix":"ACM-","tax_rate_percent":21}`
	req := httptest.NewRequest("PUT", "/api/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got model.Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Acme Tutoring", got.BusinessName)
	assert.Equal(t, "ACM-", got.InvoicePrefix)
	assert.Equal(t, 21.0, got.TaxRatePercent)
	assert.Equal(t, "Acme Tutoring", store.settings.BusinessName)
}
