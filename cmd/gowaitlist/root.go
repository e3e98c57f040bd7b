package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevelFlag string

	// Loaded once in PersistentPreRunE, read by every subcommand.
	config *Config
)

var rootCmd = &cobra.Command{
	Use:   "gowaitlist",
	Short: "Early access waitlist signup client",
	Long: `gowaitlist drives the early access waitlist for the relaunch landing page.

It validates an email, submits it to the waitlist service, falls back to the
email service or a mailto: link when the waitlist is unreachable, and offers
owner tooling (CSV export) plus the launch countdown.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file overriding the built-in defaults")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: disabled, debug, info, warn")

	rootCmd.AddCommand(joinCmd, countCmd, exportCmd, mailtoCmd, countdownCmd, lastCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		loaded.LogLevel = logLevelFlag
	}
	if err := setLogging(loaded.LogLevel); err != nil {
		return err
	}
	configureMetrics(loaded)
	config = loaded
	return nil
}
