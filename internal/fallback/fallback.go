package fallback

import (
	"context"
	"fmt"

	"github.com/Shopify/gowaitlist/internal/signup"
)

// Fallback runs only after the primary submitter failed. Channels are tried
// strictly in sequence, service before mailto.
type Fallback interface {
	Mode() Mode
	Run(ctx context.Context, req signup.Request) signup.FallbackResult
}

type Mode int

const (
	ModeNone Mode = iota
	ModeService
	ModeMailto
	ModeBoth
)

func (m Mode) String() string {
	return [...]string{"none", "service", "mailto", "both"}[m]
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "none":
		return ModeNone, nil
	case "service":
		return ModeService, nil
	case "mailto":
		return ModeMailto, nil
	case "both":
		return ModeBoth, nil
	}
	return ModeNone, fmt.Errorf("fallback mode must be one of: {none, service, mailto, both} but found %q", s)
}

func (m Mode) UsesService() bool {
	return m == ModeService || m == ModeBoth
}

func (m Mode) UsesMailto() bool {
	return m == ModeMailto || m == ModeBoth
}
