// Package outbound sends negotiation email through the platform SMTP relay.
// Every message goes out from a tagged address so broker replies route back
// through the shared mailbox with driver and load embedded.
package outbound

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/mailtag"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Sender=MockSender

// Email is one outbound negotiation message.
type Email struct {
	// DriverHandle and LoadRefID form the tagged From/Reply-To address.
	DriverHandle string
	LoadRefID    string
	// NegotiationID, when nonzero, goes into the footer so payment provider
	// memos that quote the mail can be tied back to the thread.
	NegotiationID uint64
	// To is the broker address, already source-tagged by the caller if wanted.
	To      string
	Subject string
	Body    string
}

// Sender delivers negotiation email.
type Sender interface {
	// Send delivers one message. The load reference is appended as a footer
	// so a broker reply that mangles the address still carries the load.
	Send(ctx context.Context, email Email) error
}

// BodyWithFooter appends the reference footer to the message body. The load
// reference always goes out; the negotiation id line only when the caller set
// one.
func BodyWithFooter(email Email) string {
	body := fmt.Sprintf("%s\n\nRef: %s", email.Body, email.LoadRefID)
	if email.NegotiationID != 0 {
		body = fmt.Sprintf("%s\nNegotiation ID: %d", body, email.NegotiationID)
	}
	return body
}

type smtpSender struct {
	client   *mail.Client
	domain   string
	fromName string
}

// NewSMTPSender creates a Sender over the configured SMTP relay.
func NewSMTPSender(smtpCfg config.SMTPConfig, mailCfg config.MailDomainConfig) (Sender, error) {
	client, err := mail.NewClient(smtpCfg.Host,
		mail.WithPort(smtpCfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtpCfg.Username),
		mail.WithPassword(smtpCfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &smtpSender{
		client:   client,
		domain:   mailCfg.Domain,
		fromName: mailCfg.FromName,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, email Email) error {
	from := mailtag.OutboundAddress(email.DriverHandle, email.LoadRefID, s.domain)

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.ReplyTo(from); err != nil {
		return fmt.Errorf("failed to set reply-to: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, BodyWithFooter(email))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
