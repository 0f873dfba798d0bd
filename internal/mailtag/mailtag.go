// Package mailtag implements the tagged-address scheme that routes broker
// email through the shared dispatch mailbox. Outbound mail is sent from
// <driver-handle>+<load-id>@<platform-domain>, so a broker reply carries both
// the driver and the load in the address it lands on.
package mailtag

import (
	"fmt"
	"strings"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// Resolved is the outcome of parsing an inbound recipient address.
type Resolved struct {
	// Handle is the driver handle from the local-part, normalized lowercase.
	Handle string
	// LoadRefID is the load reference from the plus-tag, or GENERAL when the
	// address carried no tag.
	LoadRefID string
}

// OutboundAddress builds the From/Reply-To address for a negotiation email.
func OutboundAddress(handle string, loadRefID string, platformDomain string) string {
	return fmt.Sprintf("%s+%s@%s", domain.NormalizeHandle(handle), loadRefID, platformDomain)
}

// TagBrokerAddress rewrites a broker address as local+<tag>@domain, where the
// tag is the load source name reduced to [a-z0-9]. Any pre-existing plus-tag
// on the broker address is stripped first. The tagging only helps the
// broker's own mail filtering; an untaggable source leaves the address as is.
func TagBrokerAddress(address string, source string) string {
	local, hostname, ok := splitAddress(address)
	if !ok {
		return address
	}

	tag := sourceTag(source)
	if tag == "" {
		return address
	}

	if i := strings.Index(local, "+"); i >= 0 {
		local = local[:i]
	}
	return fmt.Sprintf("%s+%s@%s", local, tag, hostname)
}

// ResolveInbound splits a recipient local-part on the first "+" into driver
// handle and load reference. Addresses without a tag resolve to the GENERAL
// inbox. It fails with ErrUnresolvedRecipient only when neither side yields
// anything usable.
func ResolveInbound(address string) (*Resolved, error) {
	local, _, ok := splitAddress(address)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnresolvedRecipient, address)
	}

	handle := local
	loadRefID := domain.GeneralInbox
	if i := strings.Index(local, "+"); i >= 0 {
		handle = local[:i]
		if tag := strings.TrimSpace(local[i+1:]); tag != "" {
			loadRefID = tag
		}
	}

	handle = domain.NormalizeHandle(handle)
	if handle == "" && loadRefID == domain.GeneralInbox {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnresolvedRecipient, address)
	}

	return &Resolved{Handle: handle, LoadRefID: loadRefID}, nil
}

func splitAddress(address string) (local string, hostname string, ok bool) {
	address = strings.TrimSpace(address)
	i := strings.LastIndex(address, "@")
	if i <= 0 || i == len(address)-1 {
		return "", "", false
	}
	return address[:i], address[i+1:], true
}

func sourceTag(source string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(source) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
