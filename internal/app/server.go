package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"tutordesk/internal/controller/rest"
)

// NewServer builds the Fiber app: panic recovery, request logging, the
// API routes and a health probe.
func NewServer(handlers *rest.Handlers, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tutordesk",
		ErrorHandler: errorHandler(logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handlers.Register(app)

	return app
}

// errorHandler maps service sentinels to their HTTP status, passes
// explicit fiber errors through, and hides everything else behind a
// logged 500.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if mapped := rest.MapServiceError(err); mapped != nil {
			return c.Status(mapped.Code).JSON(fiber.Map{"error": mapped.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.Error("unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)))
		return err
	}
}
