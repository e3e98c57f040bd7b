package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

func main() {
	// Prepare background context configured to listen for cancelling.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Configure channel to receive terminal interrupt.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Start goroutine to listen for interrupt signal => if received, cancel running context.
	go func() { <-sig; log.Info().Msg("shutting down"); cancel() }()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
