package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/schedule"
)

func (h *Handlers) registerSchedule(api fiber.Router) {
	group := api.Group("/schedule")

	group.Get("/compare", h.compareSchedules)
	group.Post("/materialize", h.materializeOccurrences)
}

func dateRangeFromQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to must not precede from")
	}
	return from, to, nil
}

func (h *Handlers) compareSchedules(c *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return err
	}

	studentID, err := queryInt64(c, "studentId")
	if err != nil {
		return err
	}
	if studentID != nil {
		report, err := h.Reconciliation.CompareStudent(c.Context(), *studentID, from, to)
		if err != nil {
			return err
		}
		return c.JSON(report)
	}

	reports, err := h.Reconciliation.CompareAll(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

type occurrenceRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Subject   string `json:"subject"`
	CourseID  int64  `json:"course_id" validate:"required"`
}

type materializeRequest struct {
	StudentID   int64               `json:"student_id" validate:"required"`
	Occurrences []occurrenceRequest `json:"occurrences" validate:"required,min=1,dive"`
}

func (h *Handlers) materializeOccurrences(c *fiber.Ctx) error {
	var req materializeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	occurrences := make([]schedule.Occurrence, 0, len(req.Occurrences))
	for _, o := range req.Occurrences {
		date, _ := time.Parse("2006-01-02", o.Date)
		occurrences = append(occurrences, schedule.Occurrence{
			Date:      date,
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
			Subject:   o.Subject,
			CourseID:  o.CourseID,
		})
	}

	outcome, err := h.Reconciliation.Materialize(c.Context(), req.StudentID, occurrences)
	if err != nil {
		return err
	}
	return c.JSON(outcome)
}
