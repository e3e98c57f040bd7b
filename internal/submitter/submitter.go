package submitter

import (
	"context"

	"github.com/Shopify/gowaitlist/internal/signup"
)

// Submitter makes a single attempt to place a signup on the waitlist.
// Implementations never retry and never touch UI state.
type Submitter interface {
	Submit(ctx context.Context, req signup.Request) signup.Outcome
}
