package cli

import (
	"context"
	"fmt"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new prayer request",
	Long: `Submit a new prayer request to the wall.

Required fields not supplied as flags are prompted for interactively.

Examples:
  prayerwall add
  prayerwall add --title "Health" --description "Pray for X" --name "Jane"`,
	RunE: runAdd,
}

var (
	addTitle       string
	addDescription string
	addName        string
	addPhone       string
	addEmail       string
)

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Title/subject of the request")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description of the request")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Requester name")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "Requester phone (optional)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Requester email (optional)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	draft := model.Draft{
		Title:          addTitle,
		Description:    addDescription,
		RequesterName:  addName,
		RequesterPhone: addPhone,
		RequesterEmail: addEmail,
	}

	if draft.Title == "" {
		draft.Title = promptLine("Title: ")
	}
	if draft.Description == "" {
		draft.Description = promptLine("Description: ")
	}
	if draft.RequesterName == "" {
		draft.RequesterName = promptLine("Requester name: ")
	}

	fmt.Println("🔄 Submitting request...")
	created, err := a.wall.Create(context.Background(), draft)
	if err != nil {
		return err
	}

	stats := a.wall.Stats()
	fmt.Printf("✅ Request #%d %q submitted (%s). %d requests on the wall, %d pending.\n",
		created.ID, created.Title, created.Status, stats.Total, stats.Pending)
	return nil
}
