// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package email sends password reset mail over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/saviare/campus-api/internal/config"
	"github.com/saviare/campus-api/internal/i18n"
)

// Service handles outgoing mail.
type Service struct {
	cfg         *config.SMTPConfig
	frontendURL string
	resetTTL    time.Duration
}

// NewService creates a new email service.
func NewService(cfg *config.SMTPConfig, frontendURL string, resetTTL time.Duration) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Service{
		cfg:         cfg,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		resetTTL:    resetTTL,
	}, nil
}

// ResetLink builds the frontend URL a reset token is delivered in.
func (s *Service) ResetLink(token string) string {
	return fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
}

var bodyTemplate = template.Must(template.New("reset").Parse(`<html>
<body style="font-family: Arial, sans-serif; background-color:#f6f9f8; padding:20px;">
  <table align="center" cellpadding="0" cellspacing="0" width="600" style="background:white; border-radius:10px; box-shadow:0 2px 10px rgba(0,0,0,.1);">
    <tr>
      <td align="center" style="padding:20px; background-color:#00b09b; border-radius:10px 10px 0 0;">
        <h2 style="color:white; margin:10px 0;">Plataforma Saviare</h2>
      </td>
    </tr>
    <tr>
      <td style="padding:30px;">
        <p style="font-size:16px; color:#333;">{{.Greeting}}</p>
        <p style="font-size:16px; color:#333;">{{.Intro}}</p>
        <p style="text-align:center;">
          <a href="{{.ResetURL}}" style="display:inline-block; background-color:#00b09b; color:white; padding:12px 24px; border-radius:8px; text-decoration:none; font-weight:bold;">{{.Button}}</a>
        </p>
        <p style="font-size:14px; color:#666;">{{.Expiry}}</p>
        <p style="font-size:14px; color:#666;">{{.Ignore}}</p>
      </td>
    </tr>
    <tr>
      <td align="center" style="background-color:#f0f0f0; border-radius:0 0 10px 10px; padding:15px;">
        <p style="font-size:12px; color:#666;">{{.Footer}}</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// SendPasswordReset mails the reset link to the given address. The username
// doubles as the notification address, per current platform behavior.
func (s *Service) SendPasswordReset(ctx context.Context, to, token string) error {
	subject := i18n.T(ctx, "password_reset_subject")

	var body bytes.Buffer
	err := bodyTemplate.Execute(&body, map[string]any{
		"Greeting": i18n.T(ctx, "password_reset_greeting"),
		"Intro":    i18n.T(ctx, "password_reset_intro"),
		"Button":   i18n.T(ctx, "password_reset_button"),
		"Ignore":   i18n.T(ctx, "password_reset_ignore"),
		"Expiry": i18n.TData(ctx, "password_reset_expiry", map[string]any{
			"Minutes": int(s.resetTTL.Minutes()),
		}),
		"Footer":   i18n.T(ctx, "password_reset_footer"),
		"ResetURL": template.URL(s.ResetLink(token)), //nolint:gosec // token is server-issued
	})
	if err != nil {
		return fmt.Errorf("rendering reset email: %w", err)
	}

	return s.send(to, subject, body.String())
}

// send sends an email via SMTP using go-mail.
func (s *Service) send(to, subject, body string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Use implicit TLS (SSL) for port 465, STARTTLS for others
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
