package network

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Shopify/gowaitlist/internal/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	appQueryParam    = "app"
	codeQueryParam   = "code"
	accessCodeHeader = "X-Access-Code"
)

type APIConfig struct {
	BaseURL    string
	AppSlug    string
	JoinPath   string
	NotifyPath string
	CountPath  string
	ExportPath string
	Timeout    time.Duration

	// Sends the owner access code as a query parameter instead of a header.
	ExportCodeInQuery bool

	Throttle *SubmissionThrottle
}

// WaitlistAPI talks to the remote waitlist, email, count and export endpoints.
type WaitlistAPI struct {
	client *resty.Client
	config APIConfig
}

func MakeWaitlistAPI(config APIConfig) *WaitlistAPI {
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json")
	return &WaitlistAPI{client: client, config: config}
}

func (api *WaitlistAPI) AppSlug() string {
	return api.config.AppSlug
}

func (api *WaitlistAPI) Join(ctx context.Context, payload JoinPayload) Envelope {
	defer metrics.BenchmarkMethod(time.Now(), "api.join", nil)
	payload.AppSlug = api.config.AppSlug
	return api.post(ctx, "join", api.config.JoinPath, payload)
}

func (api *WaitlistAPI) Notify(ctx context.Context, payload NotifyPayload) Envelope {
	defer metrics.BenchmarkMethod(time.Now(), "api.notify", nil)
	payload.AppSlug = api.config.AppSlug
	return api.post(ctx, "notify", api.config.NotifyPath, payload)
}

func (api *WaitlistAPI) Count(ctx context.Context) (int, error) {
	defer metrics.BenchmarkMethod(time.Now(), "api.count", nil)
	if err := api.config.Throttle.Wait(ctx); err != nil {
		return 0, errors.Wrap(err, "count throttled")
	}
	resp, err := api.client.R().
		SetContext(ctx).
		SetQueryParam(appQueryParam, api.config.AppSlug).
		Get(api.config.CountPath)
	if err != nil {
		return 0, errors.Wrap(&TransportError{Cause: err}, "count request")
	}
	envelope := resolveResponse(resp)
	if err := envelope.Err(); err != nil {
		return 0, errors.Wrap(err, "count request")
	}
	if envelope.Body.Count == nil {
		return 0, errors.Wrap(&ParseError{Raw: envelope.Raw}, "count missing from response")
	}
	return int(*envelope.Body.Count), nil
}

// ExportCSV downloads the owner CSV. Any non-CSV answer is read as an error envelope.
func (api *WaitlistAPI) ExportCSV(ctx context.Context, accessCode string) ([]byte, error) {
	defer metrics.BenchmarkMethod(time.Now(), "api.export", nil)
	if strings.TrimSpace(accessCode) == "" {
		return nil, &ValidationError{Field: "access code", Value: accessCode}
	}
	if err := api.config.Throttle.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "export throttled")
	}
	req := api.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv, application/json").
		SetQueryParam(appQueryParam, api.config.AppSlug)
	if api.config.ExportCodeInQuery {
		req.SetQueryParam(codeQueryParam, accessCode)
	} else {
		req.SetHeader(accessCodeHeader, accessCode)
	}
	resp, err := req.Get(api.config.ExportPath)
	if err != nil {
		return nil, errors.Wrap(&TransportError{Cause: err}, "export request")
	}
	contentType := resp.Header().Get("Content-Type")
	if resp.StatusCode() == http.StatusOK && strings.Contains(strings.ToLower(contentType), "csv") {
		return resp.Body(), nil
	}
	envelope := resolveResponse(resp)
	if err := envelope.Err(); err != nil {
		return nil, errors.Wrap(err, "export request")
	}
	return nil, errors.Wrap(&ApplicationError{Reason: envelope.Reason()}, "export returned no csv")
}

func (api *WaitlistAPI) post(ctx context.Context, endpoint, path string, payload interface{}) Envelope {
	if err := api.config.Throttle.Wait(ctx); err != nil {
		return MakeTransportFailure(errors.Wrap(err, "throttled"))
	}
	resp, err := api.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("waitlist request failed")
		metrics.Incr("api.requests", []string{"endpoint:" + endpoint, "result:transport_error"})
		return MakeTransportFailure(err)
	}
	envelope := resolveResponse(resp)
	metrics.Incr("api.requests", []string{"endpoint:" + endpoint, "result:" + Kind(envelope.Err())})
	log.Debug().
		Str("endpoint", endpoint).
		Int("status", envelope.StatusCode).
		Bool("accepted", envelope.Accepted()).
		Msg("waitlist response")
	return envelope
}

func resolveResponse(resp *resty.Response) Envelope {
	return ResolveEnvelope(resp.StatusCode(), resp.Header().Get("Content-Type"), resp.Body())
}
