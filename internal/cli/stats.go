package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the wall's statistics",
	Long:  `Show the server-computed counts per status. Always fresh, never derived locally.`,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	stats, err := a.client.GetStatistics(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Total      %4d\n", stats.Total)
	fmt.Printf("  ⏳ Pending   %4d\n", stats.Pending)
	fmt.Printf("  ❤️  In Prayer %4d\n", stats.InPrayer)
	fmt.Printf("  ✅ Answered  %4d\n", stats.Answered)
	fmt.Printf("  📦 Archived  %4d\n", stats.Archived)
	fmt.Println()
	return nil
}
