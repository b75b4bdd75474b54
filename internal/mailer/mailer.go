// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends the contact-form notification email to the site
// owner. Delivery is best-effort: the caller logs failures and never
// surfaces them to the visitor.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"folio/internal/models"
)

// Notifier delivers a notification for a newly received contact message.
type Notifier interface {
	NotifyContact(msg *models.ContactMessage) error
}

// SMTPNotifier sends contact notifications through a plain SMTP relay.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
}

// NewSMTP creates a notifier that relays through host:port. If username is
// empty the connection is unauthenticated (local relay).
func NewSMTP(host, port, username, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// NotifyContact sends a single email describing the message. One attempt,
// no retries.
func (n *SMTPNotifier) NotifyContact(msg *models.ContactMessage) error {
	body := buildMessage(n.from, n.to, msg)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := n.host + ":" + n.port
	if err := smtp.SendMail(addr, auth, n.from, []string{n.to}, body); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

// buildMessage assembles the RFC 5322 message bytes.
func buildMessage(from, to string, msg *models.ContactMessage) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: Portfolio contact: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	b.WriteString(msg.Message)
	b.WriteString("\r\n")
	return []byte(b.String())
}
