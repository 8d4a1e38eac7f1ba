package rest

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordesk/internal/render"
	"tutordesk/internal/schedule"
)

func (h *Handlers) registerCalendar(api fiber.Router) {
	group := api.Group("/calendar")

	group.Get("/week", h.weekView)
	group.Get("/week.png", h.weekImage)
}

// weekStartFromQuery parses start=YYYY-MM-DD, defaulting to the Monday
// of the current week.
func weekStartFromQuery(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("start")
	if raw == "" {
		today := schedule.DateOnly(time.Now())
		return today.AddDate(0, 0, -(schedule.ISOWeekday(today) - 1)), nil
	}
	start, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "start must be YYYY-MM-DD")
	}
	return start, nil
}

// hiddenFromQuery parses hidden=key1,key2 dismissed ghost keys.
func hiddenFromQuery(c *fiber.Ctx) map[string]bool {
	hidden := make(map[string]bool)
	for _, key := range strings.Split(c.Query("hidden"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			hidden[key] = true
		}
	}
	return hidden
}

func (h *Handlers) weekView(c *fiber.Ctx) error {
	start, err := weekStartFromQuery(c)
	if err != nil {
		return err
	}
	days, err := h.Classes.WeekView(c.Context(), start, hiddenFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"week_start": start.Format("2006-01-02"), "days": days})
}

func (h *Handlers) weekImage(c *fiber.Ctx) error {
	start, err := weekStartFromQuery(c)
	if err != nil {
		return err
	}
	days, err := h.Classes.WeekView(c.Context(), start, hiddenFromQuery(c))
	if err != nil {
		return err
	}

	input := render.WeekInput{WeekStart: start, StudentNames: map[int64]string{}}
	for _, day := range days {
		input.Classes = append(input.Classes, day.Classes...)
		input.Ghosts = append(input.Ghosts, day.Ghosts...)
	}

	students, err := h.Students.GetAll(c.Context(), false)
	if err != nil {
		return err
	}
	for _, s := range students {
		input.StudentNames[s.ID] = s.Name
	}

	png, err := render.WeekPNG(input)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
