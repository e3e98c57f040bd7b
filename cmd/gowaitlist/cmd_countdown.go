package main

import (
	"fmt"
	"time"

	"github.com/Shopify/gowaitlist/internal/countdown"

	"github.com/spf13/cobra"
)

var countdownWatch bool

// countdownCmd renders the time left until launch
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the time left until launch",
	Args:  cobra.NoArgs,
	RunE:  runCountdown,
}

func init() {
	countdownCmd.Flags().BoolVarP(&countdownWatch, "watch", "w", false, "keep ticking every second until launch")
}

func runCountdown(cmd *cobra.Command, args []string) error {
	target, err := countdown.ParseLaunchDate(config.LaunchDate)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Launch: %s\n", countdown.PrettyDate(target))

	display := countdown.Remaining(time.Now(), target)
	fmt.Fprintln(out, display)
	if !countdownWatch || display.Live || target.IsZero() {
		return nil
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for { // loop until launch or interrupt
		select {
		case <-cmd.Context().Done():
			return nil
		case now := <-ticker.C:
			display = countdown.Remaining(now, target)
			fmt.Fprintln(out, display)
			if display.Live {
				return nil
			}
		}
	}
}
