package impl

import (
	"context"
	"time"

	"github.com/Shopify/gowaitlist/internal/metrics"
	"github.com/Shopify/gowaitlist/internal/network"
	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/rs/zerolog/log"
)

type Joiner interface {
	Join(ctx context.Context, payload network.JoinPayload) network.Envelope
}

// PrimarySubmitter posts the signup to the remote waitlist endpoint.
type PrimarySubmitter struct {
	API       Joiner
	SourceTag string
	Consent   bool
}

func (ps *PrimarySubmitter) Submit(ctx context.Context, req signup.Request) signup.Outcome {
	defer metrics.BenchmarkMethod(time.Now(), "primary.submit", nil)
	envelope := ps.API.Join(ctx, network.JoinPayload{
		Email:    req.Email,
		Source:   ps.SourceTag,
		Consent:  ps.Consent,
		Company:  req.Honeypot,
		FromName: req.FromName(),
	})
	outcome := OutcomeFromEnvelope(envelope)
	if !outcome.Succeeded() {
		log.Warn().
			Err(envelope.Err()).
			Int("status", envelope.StatusCode).
			Str("kind", network.Kind(envelope.Err())).
			Msg("primary signup failed")
	}
	metrics.Incr("primary.outcome", []string{"outcome:" + outcome.Kind.String()})
	return outcome
}

// OutcomeFromEnvelope maps a resolved envelope to the signup outcome variant.
func OutcomeFromEnvelope(e network.Envelope) signup.Outcome {
	if !e.Accepted() {
		return signup.MakeFailed(e.Reason())
	}
	switch {
	case !e.ReportsCreation():
		return signup.MakeConfirmationSent(e.EmailSent())
	case e.WasCreated():
		return signup.MakeCreated(e.EmailSent())
	default:
		return signup.MakeAlreadyExists(e.EmailSent())
	}
}
