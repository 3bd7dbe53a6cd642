package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
	"github.com/tuanvule/clinicli/internal/schedule"
)

func newSlotsCmd(app *App) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "slots [DATE]",
		Short: "Show free appointment slots for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := todayOr(args)
			avail, err := app.Booking.Availability(context.Background(), date, department)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAvailability(date, avail))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Filter by department code or name")

	return cmd
}

// todayOr returns the first argument, or today's date when absent.
func todayOr(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return time.Now().Format(schedule.DateLayout)
}
