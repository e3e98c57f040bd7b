package main

import (
	"fmt"

	"github.com/Shopify/gowaitlist/internal/preferences"

	"github.com/spf13/cobra"
)

// lastCmd prints the most recent successful signup remembered by the preference store
var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last successful signup from this machine",
	Long: `Show the last successful signup recorded in the preference store.

Only useful with preferences.store_type=redis; the in-memory store forgets
everything when the process exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := makePreferenceStore(config)
		email, found, err := store.Get(preferences.LastSignupEmailKey)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintln(cmd.OutOrStdout(), "no signup recorded")
			return nil
		}
		at, _, err := store.Get(preferences.LastSignupAtKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (at %s)\n", email, at)
		return nil
	},
}
