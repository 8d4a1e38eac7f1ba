// Package rest is the HTTP/JSON API consumed by the dashboard and the
// student portal. Handlers stay thin: parse, validate, call a service,
// shape the response.
package rest

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutordesk/internal/model"
	"tutordesk/internal/service"
)

var validate = validator.New()

// The thin CRUD resources go straight to their repositories; the
// handlers only need these slices of them.
type CourseStore interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id int64) error
}

type ExamStore interface {
	Create(ctx context.Context, exam *model.Exam) error
	GetByID(ctx context.Context, id int64) (*model.Exam, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*model.Exam, error)
	Update(ctx context.Context, exam *model.Exam) error
	Delete(ctx context.Context, id int64) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, s *model.Settings) error
}

// Handlers bundles everything the route handlers need.
type Handlers struct {
	Logger *zap.Logger

	Students       *service.StudentService
	Classes        *service.ClassService
	Reconciliation *service.ReconciliationService
	Invoices       *service.InvoiceService
	Stats          *service.StatsService
	Punishments    *service.PunishmentService
	Notifications  *service.NotificationService

	CourseRepo   CourseStore
	ExamRepo     ExamStore
	SettingsRepo SettingsStore
}

// Register mounts every route group under /api.
func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")

	h.registerStudents(api)
	h.registerCourses(api)
	h.registerClasses(api)
	h.registerSchedule(api)
	h.registerCalendar(api)
	h.registerInvoices(api)
	h.registerStats(api)
	h.registerSettings(api)
	h.registerCommunications(api)
	h.registerExams(api)
	h.registerPunishments(api)
	h.registerPortal(api)
	h.registerTools(api)
}

// parseBody decodes JSON and runs struct validation, turning failures
// into 400s before anything touches the database.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid field: "+fieldErrs[0].Field())
		}
		return fiber.NewError(fiber.StatusBadRequest, "validation failed")
	}
	return nil
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// queryInt64 reads an optional integer query parameter.
func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return &v, nil
}

// MapServiceError translates service sentinels into HTTP errors; the
// Fiber error handler calls this for every returned error.
func MapServiceError(err error) *fiber.Error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return nil
}
