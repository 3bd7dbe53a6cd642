package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
	"github.com/tuanvule/clinicli/internal/schedule"
)

// clinicHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func clinicHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateAppointmentDate(s string) error {
	return schedule.ValidateDate(strings.TrimSpace(s))
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// departmentSelectForm builds a themed select over the department catalog.
func departmentSelectForm(app *App, result *string) *huh.Form {
	departments := app.Booking.Departments()
	options := make([]huh.Option[string], 0, len(departments))
	for _, d := range departments {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", d.Code, d.Name), d.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which department?").
				Options(options...).
				Value(result),
		),
	).WithTheme(clinicHuhTheme()).WithShowHelp(false)
}

// dateInputForm builds a themed input for the appointment date.
func dateInputForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Appointment date (YYYY-MM-DD)").
				Placeholder("2026-09-01").
				Value(result).
				Validate(validateAppointmentDate),
		),
	).WithTheme(clinicHuhTheme()).WithShowHelp(false)
}

// slotSelectForm builds a themed select over the free slots.
func slotSelectForm(slots []string, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(slots))
	for _, s := range slots {
		options = append(options, huh.NewOption(s, s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which time?").
				Options(options...).
				Value(result),
		),
	).WithTheme(clinicHuhTheme()).WithShowHelp(false)
}

// patientDetailsForm collects the patient name and an optional doctor.
func patientDetailsForm(patient, doctor *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Patient name").
				Placeholder("Jane Doe").
				Value(patient).
				Validate(validateRequired("patient name")),
			huh.NewInput().
				Title("Preferred doctor (optional)").
				Placeholder("Dr. Smith").
				Value(doctor),
		),
	).WithTheme(clinicHuhTheme()).WithShowHelp(false)
}
