package main

import (
	"fmt"
	"io"

	"github.com/Shopify/gowaitlist/internal/console"
	"github.com/Shopify/gowaitlist/internal/fallback"
	fallbackimpl "github.com/Shopify/gowaitlist/internal/fallback/impl"
	"github.com/Shopify/gowaitlist/internal/metrics"
	"github.com/Shopify/gowaitlist/internal/network"
	"github.com/Shopify/gowaitlist/internal/orchestrator"
	"github.com/Shopify/gowaitlist/internal/preferences"
	prefsimpl "github.com/Shopify/gowaitlist/internal/preferences/impl"
	submitterimpl "github.com/Shopify/gowaitlist/internal/submitter/impl"

	"github.com/rs/zerolog/log"
)

func configureMetrics(config *Config) {
	metrics.Configure(config.StatsdAddr)
	metrics.AddGlobalTags([]string{
		fmt.Sprintf("app_slug:%s", config.API.AppSlug),
		fmt.Sprintf("fallback_mode:%s", config.Fallback.Mode),
		fmt.Sprintf("submitter_type:%s", config.Signup.SubmitterType),
	})
}

func makeWaitlistAPI(config *Config) *network.WaitlistAPI {
	return network.MakeWaitlistAPI(network.APIConfig{
		BaseURL:           config.API.BaseURL,
		AppSlug:           config.API.AppSlug,
		JoinPath:          config.API.JoinPath,
		NotifyPath:        config.API.NotifyPath,
		CountPath:         config.API.CountPath,
		ExportPath:        config.API.ExportPath,
		Timeout:           config.API.Timeout,
		ExportCodeInQuery: config.API.ExportCodeInQuery,
		Throttle:          network.MakeSubmissionThrottle(config.API.ThrottleWindow, config.API.MaxRequestsPerWindow),
	})
}

func makeMailtoComposer(config *Config) fallback.MailtoComposer {
	return fallback.MailtoComposer{
		Recipient: config.Fallback.Recipient,
		Subject:   config.Fallback.Subject,
		Incentive: config.Fallback.Incentive,
		SourceTag: config.Signup.SourceTag,
	}
}

// Redis is optional: when it does not answer we keep going on an in-memory store.
func makePreferenceStore(config *Config) preferences.Store {
	store, err := prefsimpl.MakeStore(
		config.Preferences.StoreType, config.Preferences.RedisAddr, config.Preferences.KeyPrefix,
	)
	if err != nil {
		log.Warn().Err(err).Msg("preference store unavailable => using in-memory store")
		return prefsimpl.MakeMemoryStore()
	}
	return store
}

// A dry run never reaches the waitlist: no count refresh and nothing remembered.
func makeOrchestrator(config *Config, api *network.WaitlistAPI, out io.Writer, dryRun bool) *orchestrator.Orchestrator {
	ui := console.MakeUI(out)
	submitterType := config.Signup.SubmitterType
	if dryRun {
		submitterType = "noop"
	}
	sub := submitterimpl.MakeSubmitter(submitterType, api, config.Signup.SourceTag)
	fb := fallbackimpl.MakeFallback(
		config.Fallback.Mode, api, makeMailtoComposer(config), config.Signup.SourceTag, config.Signup.FromName,
	)
	o := orchestrator.MakeOrchestrator(ui, sub, fb, orchestrator.Config{
		AutoOpenMailto:      config.Fallback.AutoOpenMailto,
		MailtoOpenDelay:     config.Fallback.MailtoOpenDelay,
		CountRefreshTimeout: config.API.Timeout,
		IncentiveLine:       config.Signup.IncentiveLine,
		ShowFailureDetail:   config.Signup.ShowFailureDetail,
	})
	o.Navigator = console.MakeNavigator(out)
	if dryRun {
		return o
	}
	o.Counter = api
	o.CountDisplay = ui
	o.Preferences = makePreferenceStore(config)
	return o
}
