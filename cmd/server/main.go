package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tutordesk/internal/app"
	"tutordesk/internal/config"
	"tutordesk/internal/controller/rest"
	"tutordesk/internal/mailer"
	"tutordesk/internal/repository"
	"tutordesk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("starting tutordesk",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.HTTPAddr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	studentRepo := repository.NewStudentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool, logger)
	examRepo := repository.NewExamRepository(pool)
	punishmentRepo := repository.NewPunishmentRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	var mail mailer.Mailer = mailer.NewConsoleMailer(logger)
	if cfg.SendgridAPIKey != "" {
		mail = mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.FromName, cfg.FromEmail)
		logger.Info("using sendgrid mailer", zap.String("from", cfg.FromEmail))
	}

	handlers := &rest.Handlers{
		Logger:         logger,
		Students:       service.NewStudentService(studentRepo, classRepo, logger),
		Classes:        service.NewClassService(studentRepo, courseRepo, classRepo, logger),
		Reconciliation: service.NewReconciliationService(studentRepo, courseRepo, classRepo, logger),
		Invoices:       service.NewInvoiceService(invoiceRepo, studentRepo, classRepo, settingsRepo, logger),
		Stats:          service.NewStatsService(classRepo, studentRepo),
		Punishments:    service.NewPunishmentService(punishmentRepo, studentRepo, logger),
		Notifications:  service.NewNotificationService(studentRepo, classRepo, settingsRepo, mail, logger),
		CourseRepo:     courseRepo,
		ExamRepo:       examRepo,
		SettingsRepo:   settingsRepo,
	}

	server := app.NewServer(handlers, logger)

	go func() {
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
