package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTicketShowCmd prints one ticket in full.
func NewTicketShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}

			ticket, ok := app.Tickets.GetTicketByID(args[0])
			if !ok {
				return fmt.Errorf("no ticket with id %s", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:          %s\n", ticket.ID)
			fmt.Fprintf(out, "Title:       %s\n", ticket.Title)
			if ticket.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", ticket.Description)
			}
			fmt.Fprintf(out, "Status:      %s\n", ticket.Status)
			if ticket.Priority != "" {
				fmt.Fprintf(out, "Priority:    %s\n", ticket.Priority)
			}
			if ticket.Assignee != "" {
				fmt.Fprintf(out, "Assignee:    %s\n", ticket.Assignee)
			}
			fmt.Fprintf(out, "Created:     %s\n", ticket.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Updated:     %s\n", ticket.UpdatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
