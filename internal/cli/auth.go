package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Manage your account on the prayer-request service.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the prayer-request service",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(authStatusCmd)
}

func promptLine(label string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}

func promptPassword(label string) string {
	fmt.Print(label)
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(passwordBytes)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	username := promptLine("Username: ")
	password := promptPassword("Password: ")

	fmt.Println("🔄 Logging in...")
	user, err := a.session.Login(context.Background(), username, password)
	if err != nil {
		return err
	}

	role := "member"
	if user.IsAdmin {
		role = "administrator"
	}
	fmt.Printf("✅ Logged in as %s (%s)\n", user.DisplayName(), role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if !a.session.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := a.session.Logout(); err != nil {
		return err
	}

	fmt.Println("✅ Logged out.")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	profile := model.Profile{
		FullName: promptLine("Full name: "),
		Email:    promptLine("Email: "),
		Username: promptLine("Username: "),
	}

	password := promptPassword("Password: ")
	confirm := promptPassword("Confirm Password: ")
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	profile.Password = password

	fmt.Println("🔄 Creating account...")
	if err := a.session.Register(context.Background(), profile); err != nil {
		return err
	}

	// Registration never logs you in; an explicit login must follow.
	fmt.Println("✅ Account created! Run 'prayerwall auth login' to sign in.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	fmt.Printf("Server:  %s\n", a.cfg.ServerURL)

	if !a.session.IsAuthenticated() {
		fmt.Println("Status:  Not logged in")
		return nil
	}

	user := a.session.CurrentUser()
	fmt.Printf("User:    %s (@%s)\n", user.DisplayName(), user.Username)
	if user.IsAdmin {
		fmt.Println("Role:    Administrator")
	} else {
		fmt.Println("Role:    Member")
	}
	if exp, ok := a.session.ExpiresAt(); ok {
		fmt.Printf("Expires: %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println("Status:  ✓ Logged in")
	return nil
}
