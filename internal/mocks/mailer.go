package mocks

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/platform/mail"
)

// SentMail records one delivered message.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements mail.Mailer for testing, recording every message.
type MockMailer struct {
	Sent []SentMail
	Err  error
}

// Ensure MockMailer implements mail.Mailer interface
var _ mail.Mailer = (*MockMailer)(nil)

// Send implements the Mailer interface.
func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
