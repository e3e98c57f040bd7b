package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Shopify/gowaitlist/internal/network"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	csv  []byte
	err  error
	code string
}

func (ss *stubSource) ExportCSV(ctx context.Context, accessCode string) ([]byte, error) {
	ss.code = accessCode
	return ss.csv, ss.err
}

func TestDownloadWritesCSV(t *testing.T) {
	source := &stubSource{csv: []byte("email\na@b.co\n")}
	var buf bytes.Buffer
	n, err := MakeExporter(source).Download(context.Background(), "sesame", &buf)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, "email\na@b.co\n", buf.String())
	assert.Equal(t, "sesame", source.code)
}

func TestDownloadSurfacesReason(t *testing.T) {
	source := &stubSource{err: errors.Wrap(&network.ApplicationError{Reason: "invalid access code"}, "export request")}
	var buf bytes.Buffer
	_, err := MakeExporter(source).Download(context.Background(), "wrong", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access code")
	assert.Equal(t, 0, buf.Len())
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "relaunch-waitlist-2026-10-17.csv", DefaultFilename("relaunch", now))
}
