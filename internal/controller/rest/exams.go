package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/model"
)

type examRequest struct {
	StudentID int64    `json:"student_id" validate:"required"`
	Subject   string   `json:"subject" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	Grade     *float64 `json:"grade" validate:"omitempty,min=0,max=10"`
	Notes     string   `json:"notes"`
}

func (h *Handlers) registerExams(api fiber.Router) {
	exams := api.Group("/exams")

	exams.Get("/", h.listExams)
	exams.Post("/", h.createExam)
	exams.Get("/:id", h.getExam)
	exams.Put("/:id", h.updateExam)
	exams.Delete("/:id", h.deleteExam)
}

func (h *Handlers) listExams(c *fiber.Ctx) error {
	studentID, err := queryInt64(c, "studentId")
	if err != nil {
		return err
	}
	if studentID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "studentId is required")
	}
	exams, err := h.ExamRepo.GetByStudentID(c.Context(), *studentID)
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

func (h *Handlers) createExam(c *fiber.Ctx) error {
	var req examRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	exam := &model.Exam{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Title:     req.Title,
		Date:      date,
		Grade:     req.Grade,
		Notes:     req.Notes,
	}
	if err := h.ExamRepo.Create(c.Context(), exam); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(exam)
}

func (h *Handlers) getExam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	exam, err := h.ExamRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if exam == nil {
		return fiber.NewError(fiber.StatusNotFound, "exam not found")
	}
	return c.JSON(exam)
}

func (h *Handlers) updateExam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req examRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	exam, err := h.ExamRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if exam == nil {
		return fiber.NewError(fiber.StatusNotFound, "exam not found")
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	exam.Subject = req.Subject
	exam.Title = req.Title
	exam.Date = date
	exam.Grade = req.Grade
	exam.Notes = req.Notes

	if err := h.ExamRepo.Update(c.Context(), exam); err != nil {
		return err
	}
	return c.JSON(exam)
}

func (h *Handlers) deleteExam(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.ExamRepo.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
