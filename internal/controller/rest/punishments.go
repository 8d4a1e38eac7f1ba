package rest

import (
	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
)

type punishmentOptionRequest struct {
	Label    string `json:"label" validate:"required"`
	Weight   int    `json:"weight" validate:"required,min=1"`
	Severity string `json:"severity" validate:"omitempty,oneof=mild medium harsh"`
	IsActive *bool  `json:"is_active"`
}

// toOption applies the request with its defaults; create and update
// must agree on them or an update omitting a field would silently
// diverge from what create would have stored.
func (req *punishmentOptionRequest) toOption(id int64) *model.PunishmentOption {
	option := &model.PunishmentOption{
		ID:       id,
		Label:    req.Label,
		Weight:   req.Weight,
		Severity: req.Severity,
		IsActive: true,
	}
	if req.IsActive != nil {
		option.IsActive = *req.IsActive
	}
	if option.Severity == "" {
		option.Severity = "mild"
	}
	return option
}

type spinRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
}

func (h *Handlers) registerPunishments(api fiber.Router) {
	group := api.Group("/punishments")

	group.Get("/options", h.listPunishmentOptions)
	group.Post("/options", h.createPunishmentOption)
	group.Put("/options/:id", h.updatePunishmentOption)
	group.Delete("/options/:id", h.deletePunishmentOption)
	group.Post("/spin", h.spinPunishment)
	group.Get("/history", h.punishmentHistory)
}

func (h *Handlers) listPunishmentOptions(c *fiber.Ctx) error {
	options, err := h.Punishments.Options(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(options)
}

func (h *Handlers) createPunishmentOption(c *fiber.Ctx) error {
	var req punishmentOptionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	option := req.toOption(0)
	if err := h.Punishments.CreateOption(c.Context(), option); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

func (h *Handlers) updatePunishmentOption(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req punishmentOptionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	option := req.toOption(id)
	if err := h.Punishments.UpdateOption(c.Context(), option); err != nil {
		return err
	}
	return c.JSON(option)
}

func (h *Handlers) deletePunishmentOption(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Punishments.DeleteOption(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) spinPunishment(c *fiber.Ctx) error {
	var req spinRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	spin, err := h.Punishments.Spin(c.Context(), req.StudentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(spin)
}

func (h *Handlers) punishmentHistory(c *fiber.Ctx) error {
	studentID, err := queryInt64(c, "studentId")
	if err != nil {
		return err
	}
	if studentID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "studentId is required")
	}
	spins, err := h.Punishments.History(c.Context(), *studentID)
	if err != nil {
		return err
	}
	return c.JSON(spins)
}
