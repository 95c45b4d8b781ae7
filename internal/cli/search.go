package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search requests on the server",
	Long: `Run a server-side search over the wall. Both the term and the
status are optional; the server's filtering is authoritative and is a
different path from the local --status filter of 'prayerwall list'.

Examples:
  prayerwall search health
  prayerwall search --status answered
  prayerwall search family --status inprayer`,
	RunE: runSearch,
}

var searchStatus string

func init() {
	searchCmd.Flags().StringVarP(&searchStatus, "status", "s", "", "Status constraint (pending, inprayer, answered, archived, all)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	term := strings.Join(args, " ")

	status := model.Status("")
	if searchStatus != "" && !strings.EqualFold(searchStatus, "all") {
		status, err = model.ParseStatus(searchStatus)
		if err != nil {
			return err
		}
	}

	if err := a.wall.Search(context.Background(), term, status); err != nil {
		return err
	}

	results := a.wall.Requests()
	if len(results) == 0 {
		fmt.Println("No matching requests.")
		return nil
	}

	fmt.Printf("\n🔍 %d matching request(s)\n", len(results))
	fmt.Println(strings.Repeat("─", 72))
	for _, r := range results {
		printRequestLine(r)
	}
	fmt.Println()
	return nil
}
