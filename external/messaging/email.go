package messaging

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// EmailSender delivers one alert email. A single attempt, no retry;
// retry policy, if any, belongs to the transport side.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SMTPEmailSender sends mail through a plain-auth SMTP relay.
type SMTPEmailSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPEmailSender(host string, port int, username, password, from string) *SMTPEmailSender {
	return &SMTPEmailSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, recipient, subject, body string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", recipient),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	// net/smtp has no context support; honor the caller's deadline by
	// abandoning the dial instead of blocking the dispatcher.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.from, []string{recipient}, []byte(msg))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogEmailSender logs instead of sending. It is the default transport
// when no SMTP relay is configured.
type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) Send(ctx context.Context, recipient, subject, body string) error {
	log.WithField("prefix", "email").WithField("recipient", recipient).Info(subject)
	return nil
}
