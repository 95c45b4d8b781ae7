package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List prayer requests",
	Long: `List the requests on the wall, optionally narrowed by status.

The --status flag is a local display filter over the fetched list; use
'prayerwall search' for a server-side search.

Examples:
  prayerwall list
  prayerwall list --status pending`,
	RunE: runList,
}

var listStatus string

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (pending, inprayer, answered, archived)")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	filter := model.StatusAll
	if listStatus != "" {
		filter, err = model.ParseStatus(listStatus)
		if err != nil {
			return err
		}
	}

	if err := a.wall.Reload(context.Background()); err != nil {
		return err
	}

	visible := a.wall.Visible(filter)
	if len(visible) == 0 {
		if filter != model.StatusAll {
			fmt.Printf("No %s requests.\n", filter)
		} else {
			fmt.Println("No requests yet. Add one with: prayerwall add")
		}
		return nil
	}

	stats := a.wall.Stats()
	fmt.Printf("\n🙏 Prayer wall (%d total, %d pending)\n", stats.Total, stats.Pending)
	fmt.Println(strings.Repeat("─", 72))
	for _, r := range visible {
		printRequestLine(r)
	}
	fmt.Println()
	return nil
}

func printRequestLine(r model.Request) {
	title := r.Title
	if len(title) > 34 {
		title = title[:31] + "..."
	}

	comments := ""
	if n := len(r.Comments); n > 0 {
		comments = fmt.Sprintf("💬 %d", n)
	}

	fmt.Printf("  #%-4d %s %-34s  %-12s %s  %s\n",
		r.ID, statusIcon(r.Status), title, r.RequesterName,
		r.CreatedAt.Format("Jan 2"), comments)
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusPending:
		return "⏳"
	case model.StatusInPrayer:
		return "❤️"
	case model.StatusAnswered:
		return "✅"
	case model.StatusArchived:
		return "📦"
	default:
		return "  "
	}
}
