package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTicketStatsCmd prints aggregate counts over the collection.
func NewTicketStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ticket counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.LoadTickets(cmd.Context()); err != nil {
				return err
			}

			stats := app.Tickets.GetTicketStats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:       %d\n", stats.Total)
			fmt.Fprintf(out, "Open:        %d\n", stats.Open)
			fmt.Fprintf(out, "In progress: %d\n", stats.InProgress)
			fmt.Fprintf(out, "Closed:      %d\n", stats.Closed)
			return nil
		},
	}
}
