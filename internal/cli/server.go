package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server [url]",
	Short: "Show or set the service URL",
	Long: `Show the configured prayer-request service origin, or set a new
one.

Examples:
  prayerwall server
  prayerwall server https://prayer.example.org`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("Server: %s\n", a.cfg.ServerURL)
		return nil
	}

	a.cfg.ServerURL = args[0]
	if err := a.cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("✓ Server set to: %s\n", a.cfg.ServerURL)
	return nil
}
