package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a prayer request",
	Long: `Delete a request from the wall. Irreversible. Only the creator or
an admin may delete.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if a.cfg.ConfirmDelete && !deleteForce {
		answer := promptLine(fmt.Sprintf("Delete request #%d? This cannot be undone. [y/N] ", id))
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := a.wall.Delete(context.Background(), id); err != nil {
		return err
	}

	stats := a.wall.Stats()
	fmt.Printf("✅ Request deleted. %d requests remain on the wall.\n", stats.Total)
	return nil
}
