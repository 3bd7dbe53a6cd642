package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
)

func newDepartmentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List clinic departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatDepartments(app.Booking.Departments()))
			return nil
		},
	}
}
