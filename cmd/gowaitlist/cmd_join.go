package main

import (
	"fmt"

	"github.com/Shopify/gowaitlist/internal/orchestrator"
	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/spf13/cobra"
)

var (
	joinName    string
	joinCompany string
	joinDryRun  bool
)

// joinCmd submits one email to the early access waitlist
var joinCmd = &cobra.Command{
	Use:   "join <email>",
	Short: "Join the early access waitlist",
	Long: `Submit an email to the early access waitlist.

When the waitlist service fails, the configured fallback runs: the email
service first, then a mailto: link you can open yourself.`,
	Args: cobra.ExactArgs(1),
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().StringVar(&joinName, "name", "", "your name, passed along with the signup")
	joinCmd.Flags().StringVar(&joinCompany, "company", "", "leave empty")
	joinCmd.Flags().BoolVar(&joinDryRun, "dry-run", false, "validate and report without contacting the waitlist")
	_ = joinCmd.Flags().MarkHidden("company")
}

func runJoin(cmd *cobra.Command, args []string) error {
	api := makeWaitlistAPI(config)
	o := makeOrchestrator(config, api, cmd.OutOrStdout(), joinDryRun)

	terminal, err := o.Submit(cmd.Context(), orchestrator.Form{
		Email:    args[0],
		Honeypot: joinCompany,
		FromName: joinName,
	})
	o.WaitForRefreshes()
	if err != nil {
		return err
	}
	switch terminal {
	case signup.Succeeded, signup.FallbackSucceeded:
		return nil
	default:
		return fmt.Errorf("signup not completed (%s)", terminal)
	}
}
