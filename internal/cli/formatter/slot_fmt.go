package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/schedule"
)

// FormatDepartments renders the department catalog as a table.
func FormatDepartments(departments []domain.Department) string {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{StyleBlue.Render(d.Code), d.Name})
	}
	return Header("Departments") + "\n" + RenderTable([]string{"Code", "Department"}, rows)
}

// FormatAvailability renders free slots per department for a date.
func FormatAvailability(date string, avail schedule.Availability) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Available slots for %s", date)))
	b.WriteString("\n")

	names := make([]string, 0, len(avail))
	for name := range avail {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		slots := avail[name]
		var cell string
		switch {
		case len(slots) == 0:
			cell = StyleRed.Render("fully booked")
		case len(slots) == len(schedule.DefaultSlots()):
			cell = StyleGreen.Render("all slots free")
		default:
			cell = StyleGreen.Render(strings.Join(slots, "  "))
		}
		rows = append(rows, []string{name, cell})
	}
	b.WriteString(RenderTable([]string{"Department", "Free slots"}, rows))
	return b.String()
}

// FormatAppointments renders a list of booked appointments as a table.
func FormatAppointments(appointments []*domain.Appointment) string {
	if len(appointments) == 0 {
		return Dim("No appointments found.") + "\n"
	}
	rows := make([][]string, 0, len(appointments))
	for _, a := range appointments {
		doctor := a.Doctor
		if doctor == "" {
			doctor = Dim("-")
		}
		rows = append(rows, []string{
			Dim(shortID(a.ID)),
			a.Date,
			StyleYellow.Render(a.Time),
			a.Department,
			doctor,
			a.Patient,
		})
	}
	return RenderTable([]string{"ID", "Date", "Time", "Department", "Doctor", "Patient"}, rows)
}

// FormatBookingConfirmation renders a confirmation block for a new appointment.
func FormatBookingConfirmation(a *domain.Appointment) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✓ Appointment booked") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(a.Date), StyleYellow.Render(a.Time)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Department:"), a.Department))
	if a.Doctor != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Doctor:"), a.Doctor))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Patient:"), a.Patient))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Reference:"), shortID(a.ID)))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
