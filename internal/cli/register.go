package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticketapp/internal/validation"
)

// NewRegisterCmd creates the account-registration command.
//
// Example:
//
//	ticketapp auth register --name Alice --email alice@example.com \
//	    --password Abcdef1 --confirm-password Abcdef1
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := validation.RegisterInput{
				Name:            name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			}
			if err := validation.ValidateRegister(input); err != nil {
				return err
			}

			session, err := app.Auth.HandleRegister(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created successfully! Welcome, %s!\n", session.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("confirm-password")

	return cmd
}
