package network

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvelopeAcceptedRequiresOkFlag(t *testing.T) {
	e := ResolveEnvelope(200, "application/json; charset=utf-8", []byte(`{"ok":true,"created":true,"email_sent":true}`))
	assert.True(t, e.Accepted())
	assert.True(t, e.WasCreated())
	assert.True(t, e.EmailSent())
	assert.NoError(t, e.Err())

	e = ResolveEnvelope(200, "application/json", []byte(`{"created":true}`))
	assert.False(t, e.Accepted())
	assert.Equal(t, "application", Kind(e.Err()))
}

func TestResolveEnvelopeKeepsRawTextForNonJSON(t *testing.T) {
	e := ResolveEnvelope(502, "text/html", []byte("<h1>Bad   gateway</h1>\n"))
	assert.False(t, e.Parsed)
	assert.Equal(t, "<h1>Bad gateway</h1>", e.Reason())
	assert.Equal(t, "transport", Kind(e.Err()))
}

func TestResolveEnvelopeParseFailure(t *testing.T) {
	e := ResolveEnvelope(200, "application/json", []byte(`{"ok":tru`))
	assert.False(t, e.Parsed)
	require.Error(t, e.ParseErr)
	assert.Equal(t, "parse", Kind(e.Err()))
	assert.Equal(t, `{"ok":tru`, e.Reason())
}

func TestReasonPrecedence(t *testing.T) {
	both := ResolveEnvelope(400, "application/json", []byte(`{"ok":false,"error":"duplicate","message":"ignored"}`))
	assert.Equal(t, "duplicate", both.Reason())

	message := ResolveEnvelope(400, "application/json", []byte(`{"ok":false,"message":"slow down"}`))
	assert.Equal(t, "slow down", message.Reason())

	empty := ResolveEnvelope(503, "text/plain", nil)
	assert.Equal(t, "request failed with status 503", empty.Reason())

	unreachable := MakeTransportFailure(errors.New("dial tcp: refused"))
	assert.Equal(t, "request could not reach the server", unreachable.Reason())
	assert.Equal(t, "transport", Kind(unreachable.Err()))
}

func TestReasonSkipsRawTextOfParsedBody(t *testing.T) {
	bare := ResolveEnvelope(200, "application/json", []byte(`{"ok":false}`))
	assert.False(t, bare.Accepted())
	assert.Equal(t, "request failed with status 200", bare.Reason())

	rejected := ResolveEnvelope(422, "application/json; charset=utf-8", []byte(`{"ok":false,"created":false}`))
	assert.Equal(t, "request failed with status 422", rejected.Reason())
}

func TestReasonTruncatesLongRawText(t *testing.T) {
	raw := strings.Repeat("x ", 200)
	e := ResolveEnvelope(500, "text/plain", []byte(raw))
	reason := e.Reason()
	assert.True(t, strings.HasSuffix(reason, "…"))
	assert.Equal(t, MaxReasonLength+1, len([]rune(reason)))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "a b c", Excerpt("  a\n\tb   c ", 10))
	assert.Equal(t, "abc…", Excerpt("abcdef", 3))
	assert.Equal(t, "abcdef", Excerpt("abcdef", 0))
}

func TestKindUnwrapsPkgErrors(t *testing.T) {
	err := errors.Wrap(&ValidationError{Field: "email", Value: "x"}, "join")
	assert.Equal(t, "validation", Kind(err))
	assert.Equal(t, "none", Kind(nil))
	assert.Equal(t, "unknown", Kind(errors.New("boom")))
}
