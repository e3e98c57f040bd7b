package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestAPI(t *testing.T, handler http.HandlerFunc, codeInQuery bool) *WaitlistAPI {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return MakeWaitlistAPI(APIConfig{
		BaseURL:           server.URL,
		AppSlug:           "relaunch",
		JoinPath:          "/waitlist/join",
		NotifyPath:        "/email/send",
		CountPath:         "/waitlist/count",
		ExportPath:        "/waitlist/export",
		Timeout:           2 * time.Second,
		ExportCodeInQuery: codeInQuery,
	})
}

func TestJoinSendsPayloadWithAppSlug(t *testing.T) {
	var got JoinPayload
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/waitlist/join", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"created":true}`))
	}, false)

	assert.Equal(t, "relaunch", api.AppSlug())
	e := api.Join(context.Background(), JoinPayload{Email: "a@b.co", Source: "landing", Consent: true, Company: ""})
	assert.True(t, e.Accepted())
	assert.Equal(t, "relaunch", got.AppSlug)
	assert.Equal(t, "a@b.co", got.Email)
	assert.True(t, got.Consent)
}

func TestJoinTransportFailure(t *testing.T) {
	api := MakeWaitlistAPI(APIConfig{BaseURL: "http://127.0.0.1:1", JoinPath: "/join", Timeout: time.Second})
	e := api.Join(context.Background(), JoinPayload{Email: "a@b.co"})
	assert.False(t, e.Accepted())
	assert.Error(t, e.TransportErr)
	assert.Equal(t, "transport", Kind(e.Err()))
}

func TestJoinTimesOutOnUnresponsiveServer(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	api := MakeWaitlistAPI(APIConfig{BaseURL: server.URL, JoinPath: "/join", Timeout: 100 * time.Millisecond})
	start := time.Now()
	e := api.Join(context.Background(), JoinPayload{Email: "a@b.co"})
	elapsed := time.Since(start)

	assert.False(t, e.Accepted())
	assert.Error(t, e.TransportErr)
	assert.Equal(t, "transport", Kind(e.Err()))
	assert.Equal(t, "request could not reach the server", e.Reason())
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestCount(t *testing.T) {
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "relaunch", r.URL.Query().Get("app"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"count":42}`))
	}, false)

	n, err := api.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestCountMissingField(t *testing.T) {
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, false)

	_, err := api.Count(context.Background())
	require.Error(t, err)
	assert.Equal(t, "parse", Kind(err))
}

func TestExportCSVSendsCodeAsHeaderByDefault(t *testing.T) {
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "", r.URL.Query().Get("code"))
		if r.Header.Get("X-Access-Code") != "sesame" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"ok":false,"error":"bad code"}`))
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("email,created_at\na@b.co,2026-01-01\n"))
	}, false)

	csv, err := api.ExportCSV(context.Background(), "sesame")
	require.NoError(t, err)
	assert.Contains(t, string(csv), "a@b.co")

	_, err = api.ExportCSV(context.Background(), "wrong")
	require.Error(t, err)
	assert.Equal(t, "transport", Kind(err))
}

func TestExportCSVQueryMode(t *testing.T) {
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sesame", r.URL.Query().Get("code"))
		assert.Equal(t, "", r.Header.Get("X-Access-Code"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("email\n"))
	}, true)

	_, err := api.ExportCSV(context.Background(), "sesame")
	require.NoError(t, err)
}

func TestExportCSVRejectsEmptyCode(t *testing.T) {
	api := MakeWaitlistAPI(APIConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := api.ExportCSV(context.Background(), "  ")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestExportCSVApplicationErrorOnJSONOK(t *testing.T) {
	api := makeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"message":"export disabled"}`))
	}, false)

	_, err := api.ExportCSV(context.Background(), "sesame")
	require.Error(t, err)
	assert.Equal(t, "application", Kind(err))
	assert.Contains(t, err.Error(), "export disabled")
}

func TestSubmissionThrottle(t *testing.T) {
	st := MakeSubmissionThrottle(time.Hour, 2)
	assert.True(t, st.Allow())
	assert.True(t, st.Allow())
	assert.False(t, st.Allow())

	unlimited := MakeSubmissionThrottle(0, 0)
	for i := 0; i < 10; i++ {
		assert.True(t, unlimited.Allow())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, st.Wait(ctx))

	var nilThrottle *SubmissionThrottle
	assert.NoError(t, nilThrottle.Wait(context.Background()))
}
