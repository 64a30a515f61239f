package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/validation"
)

// NewTicketUpdateCmd applies a partial update to one ticket. Only flags that
// were set on the command line are merged into the record.
func NewTicketUpdateCmd(app *App) *cobra.Command {
	var title, description, status, priority, assignee string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}

			var input domain.UpdateTicket
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.TicketStatus(status)
				input.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				p := domain.TicketPriority(priority)
				input.Priority = &p
			}
			if cmd.Flags().Changed("assignee") {
				input.Assignee = &assignee
			}

			if err := validation.ValidateUpdateTicket(args[0], input); err != nil {
				return err
			}

			ticket, err := app.Tickets.UpdateTicket(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			if ticket == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No ticket with id %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ticket updated successfully! (id %s)\n", ticket.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "new status (open|in_progress|closed)")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "new assignee")

	return cmd
}
