// Package mail provides outbound email delivery for password recovery.
// Handlers depend on the Mailer interface only; the SMTP implementation is
// wired in at startup from configuration.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tasknest/tasknest-api/internal/config"
)

// Mailer defines the capability contract for sending a plain-text message:
// Send(to, subject, body) succeeds or fails, nothing more.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer implements Mailer over a plain SMTP submission endpoint with
// optional AUTH. It holds no connection; each Send dials, submits, quits.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates an SMTPMailer from configuration.
// Returns an error if the host or sender address is unset so a
// misconfigured mailer fails at startup rather than on first use.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp sender address is not configured")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}, nil
}

// Ensure SMTPMailer implements Mailer interface
var _ Mailer = (*SMTPMailer)(nil)

// Send submits a single plain-text message.
// net/smtp has no context support; cancellation is limited to the
// connection timeouts of the underlying dialer.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// DisabledMailer implements Mailer for deployments without SMTP settings.
// Every Send fails, which surfaces on the recovery endpoint as a delivery
// error while the rest of the API stays functional.
type DisabledMailer struct{}

// Ensure DisabledMailer implements Mailer interface
var _ Mailer = (*DisabledMailer)(nil)

// Send always reports that mail delivery is disabled.
func (DisabledMailer) Send(ctx context.Context, to, subject, body string) error {
	return fmt.Errorf("mail delivery is not configured")
}
