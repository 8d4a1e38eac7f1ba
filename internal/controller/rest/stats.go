package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handlers) registerStats(api fiber.Router) {
	api.Get("/stats/summary", h.statsSummary)
}

func (h *Handlers) statsSummary(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	summary, err := h.Stats.Summary(c.Context(), month)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
