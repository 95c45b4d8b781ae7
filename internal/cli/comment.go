package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment [id] [content...]",
	Short: "Add a comment or testimony to a request",
	Long: `Append a comment to a request's thread. Comments are never edited
or deleted afterwards.

Examples:
  prayerwall comment 12 "Praying for you!"
  prayerwall comment 12`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComment,
}

var commentsCmd = &cobra.Command{
	Use:   "comments [id]",
	Short: "List the comments on a request",
	Args:  cobra.ExactArgs(1),
	RunE:  runComments,
}

func runComment(cmd *cobra.Command, args []string) error {
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

	content := strings.Join(args[1:], " ")
	if strings.TrimSpace(content) == "" {
		content = promptLine("Comment: ")
	}

	comment, err := a.wall.Comment(context.Background(), id, content)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Comment added as %s.\n", comment.Author)
	return nil
}

func runComments(cmd *cobra.Command, args []string) error {
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

	comments, err := a.client.ListComments(context.Background(), id)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet.")
		return nil
	}

	fmt.Printf("\n💬 Comments on request #%d (%d)\n", id, len(comments))
	fmt.Println(strings.Repeat("─", 60))
	for _, c := range comments {
		fmt.Printf("  %s (%s):\n    %s\n", c.Author, c.CreatedAt.Local().Format("Jan 2 15:04"), c.Content)
	}
	fmt.Println()
	return nil
}
