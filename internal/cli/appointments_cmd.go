package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
)

func newAppointmentsCmd(app *App) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "appointments [DATE]",
		Short: "List booked appointments for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := todayOr(args)
			appointments, err := app.Booking.ListByDate(context.Background(), date, department)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAppointments(appointments))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Filter by department code or name")

	cmd.AddCommand(newAppointmentsCancelCmd(app))

	return cmd
}

func newAppointmentsCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a booked appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Booking.Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Cancelled appointment %s\n", args[0])
			return nil
		},
	}
}
