package cli

import (
	"context"
	"fmt"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a prayer request",
	Long: `Edit an existing request. Only the fields given as flags change;
the rest keep their current values. Only the creator or an admin may edit.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editName        string
	editPhone       string
	editEmail       string
)

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New requester name")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "New requester phone")
	editCmd.Flags().StringVar(&editEmail, "email", "", "New requester email")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	// Updates are full-field, so start from the current server state and
	// overlay whatever flags were set.
	current, err := a.client.GetRequest(context.Background(), id)
	if err != nil {
		return err
	}

	draft := model.Draft{
		Title:          current.Title,
		Description:    current.Description,
		RequesterName:  current.RequesterName,
		RequesterPhone: current.RequesterPhone,
		RequesterEmail: current.RequesterEmail,
	}

	if cmd.Flags().Changed("title") {
		draft.Title = editTitle
	}
	if cmd.Flags().Changed("description") {
		draft.Description = editDescription
	}
	if cmd.Flags().Changed("name") {
		draft.RequesterName = editName
	}
	if cmd.Flags().Changed("phone") {
		draft.RequesterPhone = editPhone
	}
	if cmd.Flags().Changed("email") {
		draft.RequesterEmail = editEmail
	}

	updated, err := a.wall.Update(context.Background(), id, draft)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Request #%d %q updated.\n", updated.ID, updated.Title)
	return nil
}
