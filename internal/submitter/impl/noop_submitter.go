package impl

import (
	"context"

	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/rs/zerolog/log"
)

// NoopSubmitter accepts everything without sending; used for dry runs.
type NoopSubmitter struct{}

func (ns *NoopSubmitter) Submit(ctx context.Context, req signup.Request) signup.Outcome {
	log.Info().Str("email", req.Email).Msg("dry run: signup not sent")
	return signup.MakeCreated(false)
}
