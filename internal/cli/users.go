package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users (admin only)",
	Long: `List registered users and toggle their admin role.

Commands:
  prayerwall users              # List all users
  prayerwall users toggle 3     # Flip user 3's admin flag`,
	RunE: runUsersList,
}

var usersToggleCmd = &cobra.Command{
	Use:   "toggle [user-id]",
	Short: "Flip a user's admin flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersToggle,
}

func init() {
	usersCmd.AddCommand(usersToggleCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	users, err := a.client.ListUsers(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %-4s %-16s %-24s %-28s %s\n", "ID", "USERNAME", "NAME", "EMAIL", "ROLE")
	fmt.Println("  " + strings.Repeat("─", 80))
	for _, u := range users {
		role := "member"
		if u.IsAdmin {
			role = "⭐ admin"
		}
		fmt.Printf("  %-4d %-16s %-24s %-28s %s\n", u.ID, u.Username, u.FullName, u.Email, role)
	}
	fmt.Println()
	return nil
}

func runUsersToggle(cmd *cobra.Command, args []string) error {
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

	user, err := a.client.ToggleAdmin(context.Background(), id)
	if err != nil {
		return err
	}

	if user.IsAdmin {
		fmt.Printf("✅ %s is now an administrator.\n", user.Username)
	} else {
		fmt.Printf("✅ %s is now a regular member.\n", user.Username)
	}
	return nil
}
