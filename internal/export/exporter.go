package export

import (
	"context"
	"io"
	"time"

	"github.com/Shopify/gowaitlist/internal/metrics"
	"github.com/Shopify/gowaitlist/internal/network"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type CSVSource interface {
	ExportCSV(ctx context.Context, accessCode string) ([]byte, error)
}

// Exporter downloads the owner-only waitlist CSV.
type Exporter struct {
	Source CSVSource
}

func MakeExporter(source CSVSource) *Exporter {
	return &Exporter{Source: source}
}

// Download writes the CSV to dest and returns the number of bytes written.
func (e *Exporter) Download(ctx context.Context, accessCode string, dest io.Writer) (int, error) {
	defer metrics.BenchmarkMethod(time.Now(), "export.download", nil)
	csv, err := e.Source.ExportCSV(ctx, accessCode)
	if err != nil {
		metrics.Incr("export.download", []string{"result:" + network.Kind(err)})
		log.Warn().Err(err).Msg("waitlist export failed")
		return 0, err
	}
	n, err := dest.Write(csv)
	if err != nil {
		return n, errors.Wrap(err, "writing export")
	}
	metrics.Incr("export.download", []string{"result:ok"})
	metrics.Count("export.bytes", int64(n), nil)
	log.Info().Int("bytes", n).Msg("waitlist export downloaded")
	return n, nil
}

// DefaultFilename is the download name used when no output path is given.
func DefaultFilename(appSlug string, now time.Time) string {
	return appSlug + "-waitlist-" + now.UTC().Format("2006-01-02") + ".csv"
}
