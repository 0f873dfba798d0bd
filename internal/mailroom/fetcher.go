package mailroom

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-imap"
	imapclient "github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"

	"github.com/greencandle/dispatch-core/internal/config"
)

// InboundEmail is one message pulled from the shared mailbox
type InboundEmail struct {
	UID        uint32
	MessageID  string
	From       string
	Recipients []string
	Subject    string
	Body       string
}

// Fetcher pulls new messages from the inbound mailbox
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	// Fetch returns up to limit messages with UID greater than afterUID,
	// oldest first.
	Fetch(ctx context.Context, afterUID uint32, limit int) ([]InboundEmail, error)
}

// imapFetcher dials the IMAP server fresh on every poll. Connections are
// cheap at the poll cadence and a stale session is one less failure mode.
type imapFetcher struct {
	cfg config.IMAPConfig
}

// NewIMAPFetcher creates a fetcher against the configured mailbox.
func NewIMAPFetcher(cfg config.IMAPConfig) Fetcher {
	return &imapFetcher{cfg: cfg}
}

func (f *imapFetcher) Fetch(ctx context.Context, afterUID uint32, limit int) ([]InboundEmail, error) {
	addr := fmt.Sprintf("%s:%d", f.cfg.Host, f.cfg.Port)
	c, err := imapclient.DialTLS(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial mailbox: %w", err)
	}
	defer func() { _ = c.Logout() }()

	if err := c.Login(f.cfg.Username, f.cfg.Password); err != nil {
		return nil, fmt.Errorf("failed to login to mailbox: %w", err)
	}
	if _, err := c.Select(f.cfg.Mailbox, true); err != nil {
		return nil, fmt.Errorf("failed to select mailbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	uidRange := new(imap.SeqSet)
	uidRange.AddRange(afterUID+1, 0)
	criteria.Uid = uidRange

	uids, err := c.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search mailbox: %w", err)
	}
	if len(uids) == 0 {
		return nil, nil
	}
	if limit > 0 && len(uids) > limit {
		uids = uids[:limit]
	}

	fetchSet := new(imap.SeqSet)
	fetchSet.AddNum(uids...)
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, len(uids))
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(fetchSet, items, messages)
	}()

	var out []InboundEmail
	for msg := range messages {
		email := parseMessage(msg, section)
		if email != nil {
			out = append(out, *email)
		}
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return out, ctx.Err()
}

func parseMessage(msg *imap.Message, section *imap.BodySectionName) *InboundEmail {
	email := &InboundEmail{UID: msg.Uid}

	if msg.Envelope != nil {
		email.MessageID = msg.Envelope.MessageId
		email.Subject = msg.Envelope.Subject
		if len(msg.Envelope.From) > 0 {
			email.From = msg.Envelope.From[0].Address()
		}
		for _, to := range msg.Envelope.To {
			email.Recipients = append(email.Recipients, to.Address())
		}
	}

	if r := msg.GetBody(section); r != nil {
		email.Body = extractPlainText(r)
	}

	if email.MessageID == "" {
		email.MessageID = DigestMessageID(email.From, email.Subject, email.Body)
	}
	return email
}

// extractPlainText pulls the first text part from a MIME message. Attachments
// (rate cons arrive as PDFs) are ignored; their filenames are not needed
// because the phrase match runs on subject and body.
func extractPlainText(r io.Reader) string {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return ""
	}
	for {
		part, err := mr.NextPart()
		if err != nil {
			return ""
		}
		if _, ok := part.Header.(*mail.InlineHeader); ok {
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return ""
			}
			return string(body)
		}
	}
}

// DigestMessageID builds a stable dedup key for mail without a Message-ID
// header.
func DigestMessageID(from string, subject string, body string) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{from, subject, body}, "\x00")))
	return "digest:" + hex.EncodeToString(sum[:])
}
