package rest

import (
	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/service"
)

const accessCodeHeader = "X-Access-Code"

// registerPortal mounts the student-facing routes. Every route sits
// behind the access-code middleware; an invalid or missing code is a
// 401 without distinguishing which.
func (h *Handlers) registerPortal(api fiber.Router) {
	portal := api.Group("/portal", h.portalAuth)

	portal.Get("/me", h.portalMe)
	portal.Get("/classes", h.portalClasses)
	portal.Get("/calendar/week", h.portalWeek)
	portal.Get("/exams", h.portalExams)
	portal.Get("/punishments/options", h.listPunishmentOptions)
	portal.Post("/punishments/spin", h.portalSpin)
	portal.Get("/punishments/history", h.portalHistory)
}

func (h *Handlers) portalAuth(c *fiber.Ctx) error {
	code := c.Get(accessCodeHeader)
	if code == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "access code required")
	}
	student, err := h.Students.GetByAccessCode(c.Context(), code)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid access code")
	}
	c.Locals("student", student)
	return c.Next()
}

func portalStudent(c *fiber.Ctx) *model.Student {
	return c.Locals("student").(*model.Student)
}

// portalMe exposes the student's own record; the access code itself is
// never echoed back.
func (h *Handlers) portalMe(c *fiber.Ctx) error {
	return c.JSON(portalStudent(c))
}

func (h *Handlers) portalClasses(c *fiber.Ctx) error {
	student := portalStudent(c)

	filter := repository.ClassFilter{StudentID: &student.ID}
	if month := c.Query("month"); month != "" {
		from, to, err := service.MonthRange(month)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		filter.From, filter.To = &from, &to
	}

	classes, err := h.Classes.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// portalWeek shows only this student's slice of the weekly calendar.
func (h *Handlers) portalWeek(c *fiber.Ctx) error {
	student := portalStudent(c)

	start, err := weekStartFromQuery(c)
	if err != nil {
		return err
	}
	days, err := h.Classes.WeekView(c.Context(), start, nil)
	if err != nil {
		return err
	}

	for _, day := range days {
		classes := day.Classes[:0]
		for _, class := range day.Classes {
			if class.StudentID == student.ID {
				classes = append(classes, class)
			}
		}
		day.Classes = classes
		day.Ghosts = day.Ghosts[:0] // projections for other students stay private
	}
	return c.JSON(fiber.Map{"week_start": start.Format("2006-01-02"), "days": days})
}

func (h *Handlers) portalExams(c *fiber.Ctx) error {
	exams, err := h.ExamRepo.GetByStudentID(c.Context(), portalStudent(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

func (h *Handlers) portalSpin(c *fiber.Ctx) error {
	spin, err := h.Punishments.Spin(c.Context(), portalStudent(c).ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(spin)
}

func (h *Handlers) portalHistory(c *fiber.Ctx) error {
	spins, err := h.Punishments.History(c.Context(), portalStudent(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(spins)
}
