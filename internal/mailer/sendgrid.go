package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

var _ Mailer = (*SendgridMailer)(nil)

func NewSendgridMailer(apiKey, fromName, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendgridMailer) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail("", msg.To)
	mail := sgmail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, "")

	resp, err := m.client.SendWithContext(ctx, mail)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
