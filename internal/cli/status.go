package cli

import (
	"context"
	"fmt"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Change a request's status (admin only)",
	Long: `Move a request through its lifecycle. Admin only.

Valid statuses: pending, inprayer, answered, archived.

Examples:
  prayerwall status 12 answered
  prayerwall status 7 "In Prayer"`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	status, err := model.ParseStatus(args[1])
	if err != nil {
		return err
	}

	if err := a.wall.SetStatus(context.Background(), id, status); err != nil {
		return err
	}

	fmt.Printf("✅ Request #%d is now %s %s.\n", id, statusIcon(status), status)
	return nil
}
