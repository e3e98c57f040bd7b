package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Shopify/gowaitlist/internal/export"

	"github.com/spf13/cobra"
)

var (
	exportCode string
	exportOut  string
)

// exportCmd downloads the owner-only waitlist CSV
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the waitlist as CSV (owner only)",
	Long: `Download the waitlist as a CSV file using the owner access code.

The code is sent as a request header unless api.export_code_in_query is set,
which puts it in the URL where proxies and server logs can record it.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCode, "code", "", "owner access code")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <app>-waitlist-<date>.csv)")
	_ = exportCmd.MarkFlagRequired("code")
}

func runExport(cmd *cobra.Command, args []string) error {
	api := makeWaitlistAPI(config)
	path := exportOut
	if path == "" {
		path = export.DefaultFilename(api.AppSlug(), time.Now())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed creating export file '%s': %w", path, err)
	}
	n, err := export.MakeExporter(api).Download(cmd.Context(), exportCode, f)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("failed closing export file '%s': %w", path, closeErr)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d bytes to %s\n", n, path)
	return nil
}
