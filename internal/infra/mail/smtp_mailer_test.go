package mail

import (
	"bytes"
	"context"
	"testing"
	"time"

	"apparel/config"
	"apparel/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func render(t *testing.T, msg *gomail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	return buf.String()
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.MailConfig{
		Host:     "smtp.example.com",
		Username: "user",
		Password: "secret",
		From:     "no-reply@example.com",
	})
	require.NoError(t, err)

	m := mailer.(*smtpMailer)
	var sent []*gomail.Msg
	m.send = func(_ context.Context, messages ...*gomail.Msg) error {
		sent = messages

		return nil
	}

	err = m.Send(context.Background(), service.Mail{
		To:      []string{"jane@example.com"},
		Subject: "Order Confirmation",
		Text:    "Thank you for your order O-101.",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	msg := render(t, sent[0])
	assert.Regexp(t, `(?m)^From: .*no-reply@example\.com`, msg)
	assert.Regexp(t, `(?m)^To: .*jane@example\.com`, msg)
	assert.Regexp(t, `(?m)^Subject: Order Confirmation\r$`, msg)
	assert.Regexp(t, `(?m)^Date: `, msg)
	assert.Regexp(t, `(?m)^Message-ID: <.+@.+>`, msg)
	assert.Contains(t, msg, "Thank you for your order O-101.")
}

func TestSMTPMailer_SendHonoursContext(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.MailConfig{Host: "smtp.example.com", From: "a@example.com"})
	require.NoError(t, err)

	m := mailer.(*smtpMailer)
	m.send = func(ctx context.Context, _ ...*gomail.Msg) error {
		<-ctx.Done()

		return ctx.Err()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = m.Send(ctx, service.Mail{To: []string{"b@example.com"}, Subject: "Hi", Text: "x"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSMTPMailer_RejectsEmptyRecipients(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.MailConfig{Host: "smtp.example.com", From: "a@example.com"})
	require.NoError(t, err)

	assert.Error(t, mailer.Send(context.Background(), service.Mail{Subject: "x"}))
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.MailConfig{From: "a@example.com"})
	assert.Error(t, err)
}

func TestBuildMessage_Multipart(t *testing.T) {
	msg, err := buildMessage("a@example.com", service.Mail{
		To:      []string{"b@example.com"},
		Subject: "Hi",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	require.NoError(t, err)

	s := render(t, msg)
	assert.Contains(t, s, "multipart/alternative")
	assert.Contains(t, s, "plain body")
	assert.Contains(t, s, "<p>html body</p>")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage("a@example.com", service.Mail{To: []string{"not an address"}, Subject: "Hi"})

	assert.Error(t, err)
}
