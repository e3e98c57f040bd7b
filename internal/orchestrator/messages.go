package orchestrator

import (
	"fmt"
	"strings"

	"github.com/Shopify/gowaitlist/internal/network"
	"github.com/Shopify/gowaitlist/internal/signup"
)

const (
	CountPlaceholder = "—"

	DefaultIncentiveLine = "Early access members hear about launch perks first."

	msgInvalidEmail     = "Please enter a valid email address."
	msgGenericSuccess   = "Thanks! You're on the list."
	msgCreated          = "You're in! Early access updates will land in your inbox."
	msgAlreadyExists    = "You're already on the list. We'll keep you posted."
	msgReceived         = "Thanks! Your request was received."
	msgConfirmationSent = "Check your inbox for a confirmation email."
	msgQueued           = "We couldn't reach the waitlist, but your request was queued. We'll be in touch."
	msgGenericFailure   = "Couldn't submit right now. Please try again in a moment."
	msgMailtoGuidance   = "You can also email us directly to join the list."
	msgMailtoOpening    = "Opening your email app so you can send the request yourself."
)

func composeSuccessMessage(outcome signup.Outcome, incentive string) string {
	parts := make([]string, 0, 3)
	switch outcome.Kind {
	case signup.Created:
		parts = append(parts, msgCreated)
	case signup.AlreadyExists:
		parts = append(parts, msgAlreadyExists)
	default:
		parts = append(parts, msgReceived)
	}
	if outcome.ConfirmationSent {
		parts = append(parts, msgConfirmationSent)
	}
	if incentive != "" {
		parts = append(parts, incentive)
	}
	return strings.Join(parts, " ")
}

func composeFailureMessage(reason string, showDetail bool, result signup.FallbackResult, autoOpen bool) string {
	msg := msgGenericFailure
	if showDetail && reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, network.Excerpt(reason, network.MaxReasonLength))
	}
	if result.MailtoURI == "" {
		return msg
	}
	if autoOpen {
		return msg + " " + msgMailtoOpening
	}
	return msg + " " + msgMailtoGuidance
}
