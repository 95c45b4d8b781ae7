package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one prayer request with its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid request id %q", arg)
	}
	return id, nil
}

func runShow(cmd *cobra.Command, args []string) error {
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

	r, err := a.client.GetRequest(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("\n#%d  %s  %s %s\n", r.ID, r.Title, statusIcon(r.Status), r.Status)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%s\n\n", r.Description)
	fmt.Printf("Requested by: %s", r.RequesterName)
	if r.RequesterPhone != "" {
		fmt.Printf("  📞 %s", r.RequesterPhone)
	}
	if r.RequesterEmail != "" {
		fmt.Printf("  ✉️  %s", r.RequesterEmail)
	}
	fmt.Printf("\nSubmitted:    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"))

	if len(r.Comments) > 0 {
		fmt.Printf("\n💬 Comments and testimonies (%d)\n", len(r.Comments))
		for _, c := range r.Comments {
			fmt.Printf("  %s (%s):\n    %s\n", c.Author, c.CreatedAt.Local().Format("Jan 2 15:04"), c.Content)
		}
	}
	fmt.Println()
	return nil
}
