package main

import (
	"github.com/Shopify/gowaitlist/internal/console"
	"github.com/Shopify/gowaitlist/internal/orchestrator"

	"github.com/spf13/cobra"
)

// countCmd shows the current waitlist size
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Show how many people are on the waitlist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := makeWaitlistAPI(config)
		orchestrator.RefreshCount(cmd.Context(), api, console.MakeUI(cmd.OutOrStdout()))
		return nil
	},
}
