package fallback

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultRecipient = "info@deeperthanskin.store"
	DefaultSubject   = "Early Access: Deeper Than Skin Relaunch"
	DefaultIncentive = "Early access members get first pick of launch week appointments."
	DefaultSourceTag = "deeperthanskin-relaunch"
)

// MailtoComposer builds the last-resort, user initiated mailto: link.
type MailtoComposer struct {
	Recipient string
	Subject   string
	Incentive string
	SourceTag string
}

var DefaultComposer = MailtoComposer{
	Recipient: DefaultRecipient,
	Subject:   DefaultSubject,
	Incentive: DefaultIncentive,
	SourceTag: DefaultSourceTag,
}

func BuildMailtoURI(email string) string {
	return DefaultComposer.BuildURI(email)
}

func (mc MailtoComposer) BuildURI(email string) string {
	return fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		mc.Recipient, encodeComponent(mc.Subject), encodeComponent(mc.Body(email)),
	)
}

func (mc MailtoComposer) Body(email string) string {
	lines := []string{
		"Hi there,",
		"",
		"Please add me to the early access list. The signup form could not reach the waitlist, so I'm sending this instead.",
		"",
		mc.Incentive,
		"",
		"Email: " + strings.TrimSpace(email),
		"Source: " + mc.SourceTag,
	}
	return strings.Join(lines, "\n")
}

// encodeComponent percent-encodes like a URI component: spaces become %20, never '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
