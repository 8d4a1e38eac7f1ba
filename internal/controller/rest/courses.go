package rest

import (
	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
)

type courseRequest struct {
	Name                    string `json:"name" validate:"required"`
	Subject                 string `json:"subject"`
	PricePerHourCents       int    `json:"price_per_hour_cents" validate:"min=0"`
	SharedPricePerHourCents int    `json:"shared_price_per_hour_cents" validate:"min=0"`
	DefaultDurationMinutes  int    `json:"default_duration_minutes" validate:"min=0"`
	Color                   string `json:"color"`
	IsActive                *bool  `json:"is_active"`
}

func (h *Handlers) registerCourses(api fiber.Router) {
	courses := api.Group("/courses")

	courses.Get("/", h.listCourses)
	courses.Post("/", h.createCourse)
	courses.Get("/:id", h.getCourse)
	courses.Put("/:id", h.updateCourse)
	courses.Delete("/:id", h.deleteCourse)
}

func (h *Handlers) listCourses(c *fiber.Ctx) error {
	courses, err := h.CourseRepo.GetAll(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

func (h *Handlers) createCourse(c *fiber.Ctx) error {
	var req courseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	course := &model.Course{
		Name:                    req.Name,
		Subject:                 req.Subject,
		PricePerHourCents:       req.PricePerHourCents,
		SharedPricePerHourCents: req.SharedPricePerHourCents,
		DefaultDurationMinutes:  req.DefaultDurationMinutes,
		Color:                   req.Color,
		IsActive:                true,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	if course.DefaultDurationMinutes == 0 {
		course.DefaultDurationMinutes = 60
	}

	if err := h.CourseRepo.Create(c.Context(), course); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (h *Handlers) getCourse(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	course, err := h.CourseRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if course == nil {
		return fiber.NewError(fiber.StatusNotFound, "course not found")
	}
	return c.JSON(course)
}

func (h *Handlers) updateCourse(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	course, err := h.CourseRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if course == nil {
		return fiber.NewError(fiber.StatusNotFound, "course not found")
	}

	var req courseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	course.Name = req.Name
	course.Subject = req.Subject
	course.PricePerHourCents = req.PricePerHourCents
	course.SharedPricePerHourCents = req.SharedPricePerHourCents
	if req.DefaultDurationMinutes > 0 {
		course.DefaultDurationMinutes = req.DefaultDurationMinutes
	}
	course.Color = req.Color
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.CourseRepo.Update(c.Context(), course); err != nil {
		return err
	}
	return c.JSON(course)
}

func (h *Handlers) deleteCourse(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.CourseRepo.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
