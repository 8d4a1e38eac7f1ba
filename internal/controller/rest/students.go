package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
)

type slotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=1,max=7"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Subject   string `json:"subject"`
	CourseID  int64  `json:"course_id" validate:"required"`
}

type studentRequest struct {
	Name              string        `json:"name" validate:"required"`
	Email             string        `json:"email" validate:"omitempty,email"`
	Phone             string        `json:"phone"`
	GuardianName      string        `json:"guardian_name"`
	GuardianPhone     string        `json:"guardian_phone"`
	StartDate         string        `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive          *bool         `json:"is_active"`
	UsesSharedPricing bool          `json:"uses_shared_pricing"`
	CourseID          *int64        `json:"course_id"`
	AvatarURL         string        `json:"avatar_url"`
	FixedSchedule     []slotRequest `json:"fixed_schedule" validate:"dive"`
}

func (req *studentRequest) apply(student *model.Student) {
	student.Name = req.Name
	student.Email = req.Email
	student.Phone = req.Phone
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone
	student.UsesSharedPricing = req.UsesSharedPricing
	student.CourseID = req.CourseID
	student.AvatarURL = req.AvatarURL

	student.IsActive = true
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if req.StartDate != "" {
		d, _ := time.Parse("2006-01-02", req.StartDate)
		student.StartDate = &d
	} else {
		student.StartDate = nil
	}

	student.FixedSchedule = make([]model.RecurringSlot, 0, len(req.FixedSchedule))
	for _, s := range req.FixedSchedule {
		student.FixedSchedule = append(student.FixedSchedule, model.RecurringSlot{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Subject:   s.Subject,
			CourseID:  s.CourseID,
		})
	}
}

func (h *Handlers) registerStudents(api fiber.Router) {
	students := api.Group("/students")

	students.Get("/", h.listStudents)
	students.Post("/", h.createStudent)
	students.Get("/:id", h.getStudent)
	students.Put("/:id", h.updateStudent)
	students.Delete("/:id", h.deleteStudent)
	students.Get("/:id/schedule", h.getStudentSchedule)
	students.Put("/:id/schedule", h.updateStudentSchedule)
}

func (h *Handlers) listStudents(c *fiber.Ctx) error {
	students, err := h.Students.GetAll(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return err
	}
	return c.JSON(students)
}

func (h *Handlers) createStudent(c *fiber.Ctx) error {
	var req studentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	student := &model.Student{}
	req.apply(student)

	created, err := h.Students.Create(c.Context(), student)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handlers) getStudent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, err := h.Students.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(student)
}

func (h *Handlers) updateStudent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req studentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	student, err := h.Students.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	req.apply(student)

	if err := h.Students.Update(c.Context(), student); err != nil {
		return err
	}
	return c.JSON(student)
}

func (h *Handlers) deleteStudent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Students.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) getStudentSchedule(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	student, err := h.Students.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(student.FixedSchedule)
}

type scheduleUpdateRequest struct {
	Slots []slotRequest `json:"slots" validate:"dive"`
}

func (h *Handlers) updateStudentSchedule(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req scheduleUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	slots := make([]model.RecurringSlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, model.RecurringSlot{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Subject:   s.Subject,
			CourseID:  s.CourseID,
		})
	}

	if err := h.Students.UpdateSchedule(c.Context(), id, slots); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": len(slots)})
}
