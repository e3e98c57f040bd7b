package main

import (
	"fmt"
	"strings"

	"github.com/Shopify/gowaitlist/internal/validator"

	"github.com/spf13/cobra"
)

// mailtoCmd prints the manual signup link
var mailtoCmd = &cobra.Command{
	Use:   "mailto <email>",
	Short: "Print the mailto: link for a manual signup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if !validator.IsValidEmail(email) {
			return fmt.Errorf("'%s' is not a valid email address", email)
		}
		fmt.Fprintln(cmd.OutOrStdout(), makeMailtoComposer(config).BuildURI(email))
		return nil
	},
}
