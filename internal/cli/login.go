package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticketapp/internal/validation"
)

// NewLoginCmd creates the login command.
//
// Example:
//
//	ticketapp auth login --email alice@example.com --password Abcdef1
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateLogin(validation.LoginInput{Email: email, Password: password}); err != nil {
				return err
			}

			session, err := app.Auth.HandleLogin(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login successful! Welcome back, %s!\n", session.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
