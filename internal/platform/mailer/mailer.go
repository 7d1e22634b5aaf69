// Package mailer sends transactional mail over SMTP. With no host
// configured it degrades to a no-op so local development needs no mail
// server.
package mailer

import (
	"fmt"
	"log/slog"

	gomail "github.com/go-mail/mail"
)

// Mailer sends plain-text mail.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// Config holds SMTP settings. An empty Host disables sending.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// New builds a Mailer. The returned Mailer is always usable; Send is a
// logged no-op when unconfigured.
func New(cfg Config, logger *slog.Logger) *Mailer {
	m := &Mailer{from: cfg.From, logger: logger}
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST not set, outgoing mail disabled")
		return m
	}
	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Info("mail suppressed (SMTP disabled)", slog.String("to", to), slog.String("subject", subject))
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
