// Package mail delivers outbound e-mail.
package mail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"apparel/config"
	"apparel/internal/domain/service"
	"apparel/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort = 587
	smtpTimeout     = 15 * time.Second
)

type smtpMailer struct {
	from string
	send func(ctx context.Context, messages ...*gomail.Msg) error
}

// NewMailer picks the mailer named by cfg.Mail.Provider.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	switch strings.ToLower(mc.Provider) {
	case "", "log":
		return NewLogMailer(logger), nil
	case "smtp":
		return NewSMTPMailer(mc)
	default:
		return nil, errors.Errorf("unsupported mail provider: %s", mc.Provider)
	}
}

// NewSMTPMailer sends mail through an SMTP relay, upgrading to TLS when the
// relay offers it. PLAIN auth is used when credentials are set.
func NewSMTPMailer(mc *config.MailConfig) (service.Mailer, error) {
	if mc.Host == "" || mc.From == "" {
		return nil, errors.New("smtp mailer requires host and from")
	}

	port := mc.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(smtpTimeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if mc.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mc.Username),
			gomail.WithPassword(mc.Password),
		)
	}

	client, err := gomail.NewClient(mc.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{from: mc.From, send: client.DialAndSendWithContext}, nil
}

// Send delivers one message per call. ctx bounds the dial and the whole
// SMTP exchange.
func (m *smtpMailer) Send(ctx context.Context, mail service.Mail) error {
	if len(mail.To) == 0 {
		return errors.New("mail has no recipients")
	}

	msg, err := buildMessage(m.from, mail)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		return errors.Wrapf(err, "send mail %q", mail.Subject)
	}

	return nil
}

// buildMessage renders mail; with HTML set it becomes multipart/alternative.
// Date and Message-ID are added when the message is written.
func buildMessage(from string, mail service.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", from)
	}
	if err := msg.To(mail.To...); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Text)
	if mail.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, mail.HTML)
	}

	return msg, nil
}
