package orchestrator

import (
	"context"

	"github.com/Shopify/gowaitlist/internal/signup"
)

const EmailField = "email"

// UIPort is everything the orchestrator may do to the signup form.
type UIPort interface {
	SetStatus(status signup.Status)
	SetBusy(busy bool)
	ResetForm()
	FocusField(field string)
}

// CountDisplay is the waitlist counter slot, written only by the detached refresh.
type CountDisplay interface {
	SetCount(text string)
}

type CountSource interface {
	Count(ctx context.Context) (int, error)
}

// Navigator opens a mailto: URI on the user's behalf.
type Navigator interface {
	Open(uri string) error
}

// Form is the raw form state captured on a submit event.
type Form struct {
	Email    string
	Honeypot string
	FromName string
}
