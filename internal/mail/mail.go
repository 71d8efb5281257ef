// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mail delivers the rendered digest over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	defaultSMTPHost = "smtp.qq.com"
	defaultSMTPPort = 465

	// plainFallback is the text part mail clients without HTML support show.
	plainFallback = "This digest is sent as HTML. Please view it in an HTML-capable mail client."
)

// Sender delivers digests to the configured recipients.
type Sender struct {
	cfg types.MailConfig
}

// NewSender validates the mail configuration. Sender address, password, and
// at least one recipient are required; host and port fall back to defaults.
func NewSender(cfg types.MailConfig) (*Sender, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("mail sender address is required")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("mail password is required (for Gmail/QQ, an app password)")
	}
	if len(cfg.Recipients) == 0 {
		return nil, fmt.Errorf("at least one mail recipient is required")
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = defaultSMTPHost
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = defaultSMTPPort
	}
	return &Sender{cfg: cfg}, nil
}

// SplitRecipients parses a comma-separated recipient list, dropping empty
// entries. Accepts the RECEIVER_EMAILS-style value used in env configs.
func SplitRecipients(s string) []string {
	var out []string
	for _, addr := range strings.Split(s, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Send delivers the digest as a multipart message: a plain-text fallback
// part plus the HTML body. Port 465 uses implicit TLS; any other port
// requires STARTTLS.
func (s *Sender) Send(ctx context.Context, subject, html string) error {
	msg, err := s.buildMessage(subject, html)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Sender),
		gomail.WithPassword(s.cfg.Password),
	}
	if s.cfg.SMTPPort == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(s.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending digest to %s: %w", strings.Join(s.cfg.Recipients, ", "), err)
	}
	return nil
}

func (s *Sender) buildMessage(subject, html string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if s.cfg.SenderName != "" {
		if err := msg.FromFormat(s.cfg.SenderName, s.cfg.Sender); err != nil {
			return nil, fmt.Errorf("invalid sender address %q: %w", s.cfg.Sender, err)
		}
	} else if err := msg.From(s.cfg.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", s.cfg.Sender, err)
	}

	if err := msg.To(s.cfg.Recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipient list: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, plainFallback)
	msg.AddAlternativeString(gomail.TypeTextHTML, html)
	return msg, nil
}
