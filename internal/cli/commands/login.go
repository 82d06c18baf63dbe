package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Brain Sentry backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set BRAINSENTRY_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set BRAINSENTRY_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(cmd *cobra.Command, email, password string) error {
	// Environment variables are useful for CI/CD
	if email == "" {
		email = os.Getenv("BRAINSENTRY_EMAIL")
	}
	if password == "" {
		password = os.Getenv("BRAINSENTRY_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or BRAINSENTRY_EMAIL env var)")
	}

	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or BRAINSENTRY_PASSWORD env var)")
		}
	}

	ctx, err := newCLIContext()
	if err != nil {
		return err
	}

	fmt.Printf("Logging in to %s...\n", ctx.cfg.APIURL)

	if err := ctx.manager.Login(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sess, _ := ctx.manager.Store().Session()
	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", sess.User.Name, sess.User.Email)
	if sess.User.TenantID != "" {
		fmt.Printf("  Tenant: %s\n", sess.User.TenantID)
	}

	return nil
}
