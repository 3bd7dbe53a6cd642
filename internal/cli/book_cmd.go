package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/service"
)

func newBookCmd(app *App) *cobra.Command {
	var department, date, slot, patient, doctor string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		Long: `Book an appointment. With no flags on a terminal, a guided
wizard walks through department, date, time and patient. Flags allow
non-interactive booking in scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagged := department != "" || date != "" || slot != "" || patient != ""

			var appt *domain.Appointment
			var err error
			if flagged || !app.interactive() {
				appt, err = app.Booking.Book(context.Background(), service.BookingRequest{
					Department: department,
					Doctor:     doctor,
					Date:       date,
					Time:       slot,
					Patient:    patient,
				})
			} else {
				appt, err = runBookingWizard(app)
			}
			if err != nil {
				return err
			}
			if appt == nil {
				fmt.Println(formatter.Dim("Booking cancelled."))
				return nil
			}
			fmt.Print(formatter.FormatBookingConfirmation(appt))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Department code or name")
	cmd.Flags().StringVar(&date, "date", "", "Appointment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&slot, "time", "", "Appointment time (HH:MM)")
	cmd.Flags().StringVar(&patient, "patient", "", "Patient name")
	cmd.Flags().StringVar(&doctor, "doctor", "", "Preferred doctor")

	return cmd
}

// runBookingWizard walks through the booking steps with huh forms.
// A nil appointment with a nil error means the user aborted.
func runBookingWizard(app *App) (*domain.Appointment, error) {
	ctx := context.Background()

	var department string
	if err := runForm(departmentSelectForm(app, &department)); err != nil {
		return nil, wizardAbort(err)
	}

	var date string
	if err := runForm(dateInputForm(&date)); err != nil {
		return nil, wizardAbort(err)
	}

	avail, err := app.Booking.Availability(ctx, date, department)
	if err != nil {
		return nil, err
	}
	slots := avail[department]
	if len(slots) == 0 {
		return nil, fmt.Errorf("no free slots in %s on %s", department, date)
	}

	var slot string
	if err := runForm(slotSelectForm(slots, &slot)); err != nil {
		return nil, wizardAbort(err)
	}

	var patient, doctor string
	if err := runForm(patientDetailsForm(&patient, &doctor)); err != nil {
		return nil, wizardAbort(err)
	}

	return app.Booking.Book(ctx, service.BookingRequest{
		Department: department,
		Doctor:     doctor,
		Date:       date,
		Time:       slot,
		Patient:    patient,
	})
}

func runForm(form *huh.Form) error {
	return form.Run()
}

// wizardAbort maps a user abort to a clean nil error.
func wizardAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
