package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type remindersRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (h *Handlers) registerCommunications(api fiber.Router) {
	group := api.Group("/communications")

	group.Post("/reminders", h.sendReminders)
	group.Get("/whatsapp-link", h.whatsappLink)
}

func (h *Handlers) sendReminders(c *fiber.Ctx) error {
	var req remindersRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	outcome, err := h.Notifications.SendRemindersFor(c.Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(outcome)
}

func (h *Handlers) whatsappLink(c *fiber.Ctx) error {
	classID, err := queryInt64(c, "classId")
	if err != nil {
		return err
	}
	if classID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "classId is required")
	}

	link, err := h.Notifications.WhatsAppLink(c.Context(), *classID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"link": link})
}
