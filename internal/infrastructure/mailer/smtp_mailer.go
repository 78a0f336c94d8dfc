// Package mailer sends invoice emails over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/google/uuid"
	gomail "gopkg.in/gomail.v2"

	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/pkg/config"
)

// SMTPMailer dispatches mail through the configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

var _ invoicing.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds the mailer from config.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send dispatches one message with a plain-text body, an HTML alternative and
// the given attachments. It returns the generated Message-ID on success. A
// failed dial or send wraps domain.ErrDispatchFailed; the caller decides what
// happens to invoice state (nothing is advanced here).
func (m *SMTPMailer) Send(ctx context.Context, to, subject, textBody, htmlBody string, attachments []invoicing.Attachment) (string, error) {
	if m.cfg.User == "" || m.cfg.Password == "" {
		return "", fmt.Errorf("%w: SMTP credentials not configured", domain.ErrDispatchFailed)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}

	for _, att := range attachments {
		data := att.Data
		msg.Attach(att.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if m.cfg.DisableTLSVerify {
		// Insecure; only honoured when DISABLE_TLS_VERIFY is set for dev.
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: m.cfg.Host}
	}

	if err := dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}
	return messageID, nil
}
