package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hitCounter struct {
	mu    sync.Mutex
	paths []string
}

func (hc *hitCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hc.mu.Lock()
	hc.paths = append(hc.paths, r.Method+" "+r.URL.Path)
	hc.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"created":true,"count":3}`))
}

func (hc *hitCounter) seen() []string {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	return append([]string(nil), hc.paths...)
}

func useTestConfig(t *testing.T, baseURL string) {
	t.Helper()
	loaded, err := loadConfig("")
	require.NoError(t, err)
	loaded.API.BaseURL = baseURL
	previous := config
	config = loaded
	t.Cleanup(func() { config = previous })
}

func runJoinForTest(t *testing.T, dryRun bool, email string) (string, error) {
	t.Helper()
	previous := joinDryRun
	joinDryRun = dryRun
	t.Cleanup(func() { joinDryRun = previous })

	var out bytes.Buffer
	joinCmd.SetOut(&out)
	joinCmd.SetContext(context.Background())
	t.Cleanup(func() { joinCmd.SetOut(nil) })
	err := runJoin(joinCmd, []string{email})
	return out.String(), err
}

func TestJoinDryRunSendsNothing(t *testing.T) {
	server := &hitCounter{}
	ts := httptest.NewServer(server)
	defer ts.Close()
	useTestConfig(t, ts.URL)

	out, err := runJoinForTest(t, true, "a@b.co")
	require.NoError(t, err)
	assert.Empty(t, server.seen())
	assert.Contains(t, out, "✓")
	assert.NotContains(t, out, "waitlist:")
	assert.Equal(t, "waitlist_api", config.Signup.SubmitterType)
}

func TestJoinSubmitsAndRefreshesCount(t *testing.T) {
	server := &hitCounter{}
	ts := httptest.NewServer(server)
	defer ts.Close()
	useTestConfig(t, ts.URL)

	out, err := runJoinForTest(t, false, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, []string{"POST " + defaultJoinPath, "GET " + defaultCountPath}, server.seen())
	assert.Contains(t, out, "waitlist: 3 people")
}
