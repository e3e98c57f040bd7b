package orchestrator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Shopify/gowaitlist/internal/fallback"
	"github.com/Shopify/gowaitlist/internal/metrics"
	"github.com/Shopify/gowaitlist/internal/preferences"
	"github.com/Shopify/gowaitlist/internal/signup"
	"github.com/Shopify/gowaitlist/internal/submitter"
	"github.com/Shopify/gowaitlist/internal/validator"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultMailtoOpenDelay     = 900 * time.Millisecond
	defaultCountRefreshTimeout = 5 * time.Second
)

var ErrSubmissionInFlight = errors.New("a signup submission is already in flight")

type Config struct {
	AutoOpenMailto      bool
	MailtoOpenDelay     time.Duration
	CountRefreshTimeout time.Duration
	IncentiveLine       string

	// Appends an excerpt of the server's failure detail to the user facing status.
	ShowFailureDetail bool
}

// Orchestrator sequences validation, primary submit and the fallback chain for
// one signup form. It holds at most one submission in flight at a time.
type Orchestrator struct {
	UI           UIPort
	Submitter    submitter.Submitter
	Fallback     fallback.Fallback
	Navigator    Navigator
	Counter      CountSource
	CountDisplay CountDisplay
	Preferences  preferences.Store
	Config       Config

	inFlight  atomic.Bool
	state     atomic.Int32
	refreshes sync.WaitGroup
}

func MakeOrchestrator(
	ui UIPort,
	sub submitter.Submitter,
	fb fallback.Fallback,
	config Config,
) *Orchestrator {
	if ui == nil || sub == nil {
		panic(fmt.Errorf("failed instantiating Orchestrator: ui port and submitter are required"))
	}
	if config.MailtoOpenDelay <= 0 {
		config.MailtoOpenDelay = defaultMailtoOpenDelay
	}
	if config.CountRefreshTimeout <= 0 {
		config.CountRefreshTimeout = defaultCountRefreshTimeout
	}
	return &Orchestrator{UI: ui, Submitter: sub, Fallback: fb, Config: config}
}

func (o *Orchestrator) State() signup.State {
	return signup.State(o.state.Load())
}

func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}

// Submit handles one submit event and returns the terminal state it reached.
// The orchestrator is back to Idle, with the busy indicator cleared, by the time it returns.
func (o *Orchestrator) Submit(ctx context.Context, form Form) (terminal signup.State, err error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		metrics.Incr("signup.attempt", []string{"result:rejected_in_flight"})
		return o.State(), ErrSubmissionInFlight
	}
	logger := log.With().Str("attempt_id", uuid.NewString()).Logger()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("signup pipeline crashed")
			o.UI.SetStatus(signup.MakeFailureStatus(msgGenericFailure))
			terminal, err = signup.FallbackFailed, errors.Errorf("signup pipeline crashed: %v", r)
		}
		o.UI.SetBusy(false)
		o.setState(signup.Idle)
		o.inFlight.Store(false)
		metrics.Incr("signup.outcome", []string{"state:" + terminal.String()})
		metrics.BenchmarkMethod(start, "signup.submit", []string{"state:" + terminal.String()})
		logger.Info().Str("terminal_state", terminal.String()).Msg("signup attempt finished")
	}()
	metrics.Incr("signup.attempt", []string{"result:accepted"})
	return o.run(ctx, form, logger), nil
}

func (o *Orchestrator) run(ctx context.Context, form Form, logger zerolog.Logger) signup.State {
	o.setState(signup.Validating)
	metadata := map[string]string{}
	if name := strings.TrimSpace(form.FromName); name != "" {
		metadata[signup.FromNameKey] = name
	}
	req := signup.MakeRequest(strings.TrimSpace(form.Email), form.Honeypot, metadata)

	if req.IsBot() {
		logger.Info().Msg("honeypot filled => simulating success")
		o.UI.SetStatus(signup.MakeSuccessStatus(msgGenericSuccess))
		o.UI.ResetForm()
		return o.setState(signup.Succeeded)
	}

	if !validator.IsValidEmail(req.Email) {
		logger.Debug().Msg("rejected invalid email")
		o.UI.SetStatus(signup.MakeFailureStatus(msgInvalidEmail))
		o.UI.FocusField(EmailField)
		return o.setState(signup.Idle)
	}

	o.setState(signup.Submitting)
	o.UI.SetBusy(true)
	outcome := o.Submitter.Submit(ctx, req)
	if outcome.Succeeded() {
		logger.Info().Str("outcome", outcome.Kind.String()).Msg("signup accepted")
		o.UI.SetStatus(signup.MakeSuccessStatus(composeSuccessMessage(outcome, o.Config.IncentiveLine)))
		o.UI.ResetForm()
		o.rememberSignup(req.Email, logger)
		o.refreshCountDetached()
		return o.setState(signup.Succeeded)
	}

	logger.Warn().Str("reason", outcome.Reason).Msg("primary signup failed => falling back")
	o.setState(signup.FallingBack)
	result := o.runFallback(ctx, req)
	if result.Succeeded {
		o.UI.SetStatus(signup.MakeSuccessStatus(msgQueued))
		o.UI.ResetForm()
		return o.setState(signup.FallbackSucceeded)
	}

	autoOpen := o.Config.AutoOpenMailto && result.MailtoURI != "" && o.Navigator != nil
	o.UI.SetStatus(signup.MakeFailureStatus(
		composeFailureMessage(outcome.Reason, o.Config.ShowFailureDetail, result, autoOpen),
	))
	if autoOpen {
		o.openMailtoAfterDelay(ctx, result.MailtoURI, logger)
	}
	return o.setState(signup.FallbackFailed)
}

func (o *Orchestrator) runFallback(ctx context.Context, req signup.Request) signup.FallbackResult {
	if o.Fallback == nil {
		return signup.FallbackResult{Channel: signup.ChannelNone}
	}
	return o.Fallback.Run(ctx, req)
}

// Waits so the failure status stays visible before the user's mail client takes over.
func (o *Orchestrator) openMailtoAfterDelay(ctx context.Context, uri string, logger zerolog.Logger) {
	timer := time.NewTimer(o.Config.MailtoOpenDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logger.Debug().Msg("context done before mailto could open")
		return
	case <-timer.C:
	}
	if err := o.Navigator.Open(uri); err != nil {
		logger.Warn().Err(err).Msg("failed opening mailto link")
	}
}

func (o *Orchestrator) rememberSignup(email string, logger zerolog.Logger) {
	if o.Preferences == nil {
		return
	}
	if err := o.Preferences.Set(preferences.LastSignupEmailKey, email); err != nil {
		logger.Debug().Err(err).Msg("failed remembering signup email")
		return
	}
	if err := o.Preferences.Set(preferences.LastSignupAtKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		logger.Debug().Err(err).Msg("failed remembering signup time")
	}
}

// Detached from the submission: its own context, its own display slot, its own failures.
func (o *Orchestrator) refreshCountDetached() {
	if o.Counter == nil || o.CountDisplay == nil {
		return
	}
	o.refreshes.Add(1)
	go func() {
		defer o.refreshes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), o.Config.CountRefreshTimeout)
		defer cancel()
		o.RefreshCount(ctx)
	}()
}

// RefreshCount writes the current waitlist size, or the placeholder on any failure.
func (o *Orchestrator) RefreshCount(ctx context.Context) {
	if o.Counter == nil || o.CountDisplay == nil {
		return
	}
	RefreshCount(ctx, o.Counter, o.CountDisplay)
}

func RefreshCount(ctx context.Context, source CountSource, display CountDisplay) {
	count, err := source.Count(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("waitlist count refresh failed")
		metrics.Incr("count.refresh", []string{"result:failed"})
		display.SetCount(CountPlaceholder)
		return
	}
	metrics.Incr("count.refresh", []string{"result:ok"})
	metrics.Gauge("waitlist.count", float64(count), nil)
	display.SetCount(strconv.Itoa(count))
}

// WaitForRefreshes blocks until detached count refreshes have finished.
func (o *Orchestrator) WaitForRefreshes() {
	o.refreshes.Wait()
}

func (o *Orchestrator) setState(s signup.State) signup.State {
	o.state.Store(int32(s))
	return s
}
