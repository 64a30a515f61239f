package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errLoginRequired gates every ticket command behind a persisted session.
var errLoginRequired = errors.New(`login required: run "ticketapp auth login" first`)

// Execute runs the CLI. The version string is injected at build time.
func Execute(version string) {
	ctx := context.Background()

	app, err := NewApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer app.Close()

	root := NewRootCmd(app, version)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd assembles the command tree.
func NewRootCmd(app *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "ticketapp",
		Short:         "Local ticket-management demo",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	auth := &cobra.Command{
		Use:   "auth",
		Short: "Register, login, logout",
	}
	auth.AddCommand(
		NewRegisterCmd(app),
		NewLoginCmd(app),
		NewLogoutCmd(app),
		NewWhoamiCmd(app),
	)

	tickets := &cobra.Command{
		Use:   "tickets",
		Short: "Manage support tickets",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAuth(cmd.Context(), app)
		},
	}
	tickets.AddCommand(
		NewTicketListCmd(app),
		NewTicketShowCmd(app),
		NewTicketCreateCmd(app),
		NewTicketUpdateCmd(app),
		NewTicketDeleteCmd(app),
		NewTicketStatsCmd(app),
	)

	root.AddCommand(auth, tickets)
	return root
}

// requireAuth checks for a persisted session marker. Presence is enough; the
// record is only parsed by CheckAuth.
func requireAuth(ctx context.Context, app *App) error {
	if !app.Auth.SessionPresent(ctx) {
		return errLoginRequired
	}
	return nil
}
