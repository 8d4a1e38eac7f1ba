package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string
	Environment string
	HTTPAddr    string

	MigrationsPath string

	// SendGrid; when the key is empty reminders fall back to the
	// console mailer.
	SendgridAPIKey string
	FromName       string
	FromEmail      string
}

func Load() (*Config, error) {
	// Load .env if present; plain environment variables work too.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    os.Getenv("ENV"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromName:       os.Getenv("MAIL_FROM_NAME"),
		FromEmail:      os.Getenv("MAIL_FROM_EMAIL"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if cfg.FromName == "" {
		cfg.FromName = "TutorDesk"
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.SendgridAPIKey != "" && cfg.FromEmail == "" {
		return nil, fmt.Errorf("MAIL_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}

	return cfg, nil
}
