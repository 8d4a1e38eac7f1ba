package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
}

// Mailer sends transactional mail. The server wires the SendGrid
// implementation when an API key is configured and falls back to the
// console one otherwise, so local development never emails anyone.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
