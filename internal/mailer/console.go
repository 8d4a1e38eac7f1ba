package mailer

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleMailer logs messages instead of sending them.
type ConsoleMailer struct {
	logger *zap.Logger
}

var _ Mailer = (*ConsoleMailer)(nil)

func NewConsoleMailer(logger *zap.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("Email (console mailer)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.TextBody))
	return nil
}
