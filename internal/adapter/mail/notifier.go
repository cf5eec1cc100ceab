package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier implements port.Notifier by relaying plain text mails through
// an unauthenticated SMTP relay.
type Notifier struct {
	cfg  configs.Mail
	send sendFunc
}

// New creates a notifier for the relay in cfg.
func New(cfg configs.Mail) *Notifier {
	return &Notifier{cfg: cfg, send: smtp.SendMail}
}

// Send delivers n to the configured recipients.
func (m *Notifier) Send(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rcpt := append(append([]string{}, m.cfg.To...), m.cfg.Cc...)
	if len(rcpt) == 0 {
		return fmt.Errorf("send %s mail: no recipients", n.Kind)
	}
	if err := m.send(m.cfg.Addr, nil, m.cfg.From, rcpt, m.message(n)); err != nil {
		return fmt.Errorf("send %s mail: %w", n.Kind, err)
	}
	return nil
}

func (m *Notifier) message(n domain.Notification) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.cfg.To, ", "))
	if len(m.cfg.Cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(m.cfg.Cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", m.cfg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(n.Body(), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
