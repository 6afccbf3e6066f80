// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"voyago/config"
	"voyago/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSendTimeout = 10 * time.Second

// smtpMailer implements service.Mailer using net/smtp with PLAIN auth.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	timeout := defaultSendTimeout
	if cfg.SMTP != nil && cfg.SMTP.Timeout > 0 {
		timeout = cfg.SMTP.Timeout
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		timeout:  timeout,
		logger:   logger,
	}
}

// Send delivers a plain-text email to a single recipient. The whole exchange
// runs against a single connection deadline, so a stalled SMTP host can
// never pin a request goroutine.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := m.send(ctx, to, subject, body); err != nil {
		m.logger.Error("Failed to send email",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Info("Email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	dialer := &net.Dialer{Timeout: m.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp host")
	}
	defer conn.Close()

	// One deadline covers the greeting, auth and the full message exchange.
	if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
		return errors.Wrap(err, "failed to set smtp deadline")
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return errors.Wrap(err, "failed to open smtp session")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return errors.Wrap(err, "failed to start tls")
		}
	}

	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp authentication failed")
		}
	}

	if err := client.Mail(m.from); err != nil {
		return errors.Wrap(err, "smtp mail command failed")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp rcpt command failed")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data command failed")
	}
	if _, err := writer.Write(msg); err != nil {
		return errors.Wrap(err, "failed to write message body")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finish message body")
	}

	return errors.Wrap(client.Quit(), "failed to close smtp session")
}
