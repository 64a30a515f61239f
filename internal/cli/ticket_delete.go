package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTicketDeleteCmd removes a ticket. Deleting an id that does not exist
// still reports success; the collection is simply persisted unchanged.
func NewTicketDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}
			if err := app.Tickets.DeleteTicket(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ticket deleted successfully!")
			return nil
		},
	}
}
