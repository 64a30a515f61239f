package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates a command printing the current session, if any.
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.CheckAuth(cmd.Context())

			session := app.Auth.Session()
			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %s), logged in at %s\n",
				session.Name, session.Email, session.ID, session.LoginTime.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
