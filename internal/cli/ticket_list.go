package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticketapp/internal/domain"
)

// NewTicketListCmd lists tickets, optionally filtered by status.
func NewTicketListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}

			var tickets []domain.Ticket
			if status != "" {
				ticketStatus := domain.TicketStatus(status)
				if !ticketStatus.Valid() {
					return fmt.Errorf("invalid status %q: must be open, in_progress, or closed", status)
				}
				tickets = app.Tickets.GetTicketsByStatus(ticketStatus)
			} else {
				tickets = app.Tickets.Tickets()
			}

			if len(tickets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tickets.")
				return nil
			}
			for _, ticket := range tickets {
				printTicketLine(cmd, ticket)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (open|in_progress|closed)")
	return cmd
}

func printTicketLine(cmd *cobra.Command, ticket domain.Ticket) {
	line := fmt.Sprintf("%s  [%s]", ticket.ID, ticket.Status)
	if ticket.Priority != "" {
		line += fmt.Sprintf("  (%s)", ticket.Priority)
	}
	line += "  " + ticket.Title
	if ticket.Assignee != "" {
		line += "  @" + ticket.Assignee
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
