package rest

import (
	"github.com/gofiber/fiber/v2"
)

type settingsRequest struct {
	BusinessName     string  `json:"business_name" validate:"required"`
	BusinessEmail    string  `json:"business_email" validate:"omitempty,email"`
	InvoicePrefix    string  `json:"invoice_prefix" validate:"required"`
	TaxRatePercent   float64 `json:"tax_rate_percent" validate:"min=0,max=100"`
	ReminderTemplate string  `json:"reminder_template"`
}

func (h *Handlers) registerSettings(api fiber.Router) {
	api.Get("/settings", h.getSettings)
	api.Put("/settings", h.updateSettings)
}

func (h *Handlers) getSettings(c *fiber.Ctx) error {
	settings, err := h.SettingsRepo.Get(c.Context())
	if err != nil {
		return err
	}
	if settings == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "settings row missing")
	}
	return c.JSON(settings)
}

func (h *Handlers) updateSettings(c *fiber.Ctx) error {
	var req settingsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	settings, err := h.SettingsRepo.Get(c.Context())
	if err != nil {
		return err
	}
	if settings == nil {
		// The migration seeds the row; a missing one means the database
		// is in a state no handler should paper over.
		return fiber.NewError(fiber.StatusInternalServerError, "settings row missing")
	}
	settings.BusinessName = req.BusinessName
	settings.BusinessEmail = req.BusinessEmail
	settings.InvoicePrefix = req.InvoicePrefix
	settings.TaxRatePercent = req.TaxRatePercent
	settings.ReminderTemplate = req.ReminderTemplate

	if err := h.SettingsRepo.Update(c.Context(), settings); err != nil {
		return err
	}
	return c.JSON(settings)
}
