package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/validation"
)

// NewTicketCreateCmd creates a ticket from flag values.
//
// Example:
//
//	ticketapp tickets create --title "Broken checkout" --priority high
func NewTicketCreateCmd(app *App) *cobra.Command {
	var title, description, status, priority, assignee string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}

			input := domain.CreateTicket{
				Title:       title,
				Description: description,
				Status:      domain.TicketStatus(status),
				Priority:    domain.TicketPriority(priority),
				Assignee:    assignee,
			}
			if err := validation.ValidateCreateTicket(input); err != nil {
				return err
			}

			ticket, err := app.Tickets.CreateTicket(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ticket created successfully! (id %s)\n", ticket.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "ticket title")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&status, "status", string(domain.TicketStatusOpen), "status (open|in_progress|closed)")
	cmd.Flags().StringVar(&priority, "priority", "", "optional priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "optional assignee")
	cmd.MarkFlagRequired("title")

	return cmd
}
