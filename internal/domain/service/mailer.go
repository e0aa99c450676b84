package service

import "context"

// Mail is a single outbound e-mail.
type Mail struct {
	To      []string
	Subject string
	Text    string
	HTML    string // Optional HTML alternative.
}

// Mailer delivers e-mail.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
