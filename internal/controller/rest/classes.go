package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
	"tutordesk/internal/service"
)

type classRequest struct {
	StudentID   int64  `json:"student_id" validate:"required"`
	CourseID    int64  `json:"course_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	IsRecurring bool   `json:"is_recurring"`
	PriceCents  int    `json:"price_cents" validate:"min=0"`
	Notes       string `json:"notes"`
}

func (h *Handlers) registerClasses(api fiber.Router) {
	classes := api.Group("/classes")

	classes.Get("/", h.listClasses)
	classes.Post("/", h.createClass)
	classes.Get("/:id", h.getClass)
	classes.Put("/:id", h.updateClass)
	classes.Delete("/:id", h.deleteClass)
	classes.Patch("/:id/status", h.patchClassStatus)
	classes.Patch("/:id/payment", h.patchClassPayment)
}

// classFilterFromQuery supports studentId, month=YYYY-MM, from/to dates
// and the two status fields.
func classFilterFromQuery(c *fiber.Ctx) (repository.ClassFilter, error) {
	var filter repository.ClassFilter

	studentID, err := queryInt64(c, "studentId")
	if err != nil {
		return filter, err
	}
	filter.StudentID = studentID

	if month := c.Query("month"); month != "" {
		from, to, err := service.MonthRange(month)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		filter.From, filter.To = &from, &to
	}
	if raw := c.Query("from"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		filter.From = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		filter.To = &d
	}
	filter.Status = model.ClassStatus(c.Query("status"))
	filter.PaymentStatus = model.PaymentStatus(c.Query("paymentStatus"))

	return filter, nil
}

func (h *Handlers) listClasses(c *fiber.Ctx) error {
	filter, err := classFilterFromQuery(c)
	if err != nil {
		return err
	}
	classes, err := h.Classes.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

func (h *Handlers) createClass(c *fiber.Ctx) error {
	var req classRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	class := &model.Class{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsRecurring: req.IsRecurring,
		PriceCents:  req.PriceCents,
		Notes:       req.Notes,
	}

	created, err := h.Classes.Create(c.Context(), class)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handlers) getClass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	class, err := h.Classes.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(class)
}

func (h *Handlers) updateClass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req classRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	class, err := h.Classes.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	class.CourseID = req.CourseID
	class.Date = date
	class.StartTime = req.StartTime
	class.EndTime = req.EndTime
	class.Notes = req.Notes
	if req.PriceCents > 0 {
		class.PriceCents = req.PriceCents
	}

	if err := h.Classes.Update(c.Context(), class); err != nil {
		return err
	}
	return c.JSON(class)
}

func (h *Handlers) deleteClass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Classes.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type statusPatchRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

func (h *Handlers) patchClassStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req statusPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.Classes.UpdateStatus(c.Context(), id, model.ClassStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id, "status": req.Status})
}

type paymentPatchRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=paid unpaid"`
}

func (h *Handlers) patchClassPayment(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req paymentPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.Classes.UpdatePaymentStatus(c.Context(), id, model.PaymentStatus(req.PaymentStatus)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id, "payment_status": req.PaymentStatus})
}
