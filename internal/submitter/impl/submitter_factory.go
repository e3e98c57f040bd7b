package impl

import (
	"fmt"

	"github.com/Shopify/gowaitlist/internal/submitter"
)

func MakeSubmitter(submitterType string, api Joiner, sourceTag string) submitter.Submitter {
	switch submitterType {
	case "waitlist_api":
		return MakePrimarySubmitter(api, sourceTag)
	case "noop":
		return &NoopSubmitter{}
	default:
		panic(fmt.Errorf("submitter type must be one of: {waitlist_api, noop}"))
	}
}

func MakePrimarySubmitter(api Joiner, sourceTag string) submitter.Submitter {
	if api == nil {
		panic(fmt.Errorf("failed instantiating PrimarySubmitter: nil waitlist api"))
	}
	return &PrimarySubmitter{API: api, SourceTag: sourceTag, Consent: true}
}
