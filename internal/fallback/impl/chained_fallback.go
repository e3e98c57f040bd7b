package impl

import (
	"context"
	"time"

	"github.com/Shopify/gowaitlist/internal/fallback"
	"github.com/Shopify/gowaitlist/internal/metrics"
	"github.com/Shopify/gowaitlist/internal/network"
	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/rs/zerolog/log"
)

const (
	fallbackIntent  = "waitlist_fallback"
	fallbackSubject = "Early access request (waitlist fallback)"
)

type Notifier interface {
	Notify(ctx context.Context, payload network.NotifyPayload) network.Envelope
}

// ChainedFallback tries the email service, then prepares a mailto link.
type ChainedFallback struct {
	mode      fallback.Mode
	Notifier  Notifier
	Composer  fallback.MailtoComposer
	SourceTag string

	// Used when the request carries no name of its own.
	FromName string
}

func (cf *ChainedFallback) Mode() fallback.Mode {
	return cf.mode
}

func (cf *ChainedFallback) Run(ctx context.Context, req signup.Request) signup.FallbackResult {
	defer metrics.BenchmarkMethod(time.Now(), "fallback.run", []string{"mode:" + cf.mode.String()})
	if cf.mode.UsesService() {
		if cf.trySendService(ctx, req) {
			metrics.Incr("fallback.outcome", []string{"channel:service"})
			return signup.FallbackResult{Succeeded: true, Channel: signup.ChannelService}
		}
	}
	if cf.mode.UsesMailto() {
		metrics.Incr("fallback.outcome", []string{"channel:mailto"})
		return signup.FallbackResult{
			Succeeded: false,
			Channel:   signup.ChannelMailto,
			MailtoURI: cf.Composer.BuildURI(req.Email),
		}
	}
	metrics.Incr("fallback.outcome", []string{"channel:none"})
	return signup.FallbackResult{Succeeded: false, Channel: signup.ChannelNone}
}

func (cf *ChainedFallback) trySendService(ctx context.Context, req signup.Request) bool {
	fromName := req.FromName()
	if fromName == "" {
		fromName = cf.FromName
	}
	envelope := cf.Notifier.Notify(ctx, network.NotifyPayload{
		Source:   cf.SourceTag,
		Email:    req.Email,
		FromName: fromName,
		Intent:   fallbackIntent,
		Subject:  fallbackSubject,
		Message:  cf.Composer.Body(req.Email),
	})
	if envelope.Accepted() {
		return true
	}
	log.Warn().
		Err(envelope.Err()).
		Int("status", envelope.StatusCode).
		Str("reason", envelope.Reason()).
		Msg("fallback email service failed")
	return false
}
