package impl

import (
	"fmt"

	"github.com/Shopify/gowaitlist/internal/fallback"
)

func MakeFallback(
	modeName string,
	notifier Notifier,
	composer fallback.MailtoComposer,
	sourceTag string,
	fromName string,
) fallback.Fallback {
	mode, err := fallback.ParseMode(modeName)
	if err != nil {
		panic(err)
	}
	if mode.UsesService() && notifier == nil {
		panic(fmt.Errorf("fallback mode %s requires an email service notifier", mode))
	}
	return &ChainedFallback{
		mode:      mode,
		Notifier:  notifier,
		Composer:  composer,
		SourceTag: sourceTag,
		FromName:  fromName,
	}
}
