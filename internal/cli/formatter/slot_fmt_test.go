package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/schedule"
)

func TestFormatDepartments(t *testing.T) {
	out := FormatDepartments(domain.Departments())

	assert.Contains(t, out, "D01")
	assert.Contains(t, out, "General Medicine")
	assert.Contains(t, out, "D06")
	assert.Contains(t, out, "Pediatrics")
}

func TestFormatAvailability(t *testing.T) {
	avail := schedule.Availability{
		"ENT":              {"09:00", "09:30"},
		"Dentistry":        nil,
		"General Medicine": schedule.DefaultSlots(),
	}

	out := FormatAvailability("2026-09-01", avail)

	assert.Contains(t, out, "2026-09-01")
	assert.Contains(t, out, "09:00  09:30")
	assert.Contains(t, out, "fully booked")
	assert.Contains(t, out, "all slots free")
}

func TestFormatAppointments(t *testing.T) {
	out := FormatAppointments([]*domain.Appointment{
		{
			ID:         "12345678-aaaa-bbbb-cccc-dddddddddddd",
			Department: "ENT",
			Date:       "2026-09-01",
			Time:       "09:00",
			Patient:    "Jane Doe",
			CreatedAt:  time.Now(),
		},
	})

	assert.Contains(t, out, "12345678")
	assert.NotContains(t, out, "aaaa-bbbb")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "09:00")
}

func TestFormatAppointments_Empty(t *testing.T) {
	out := FormatAppointments(nil)
	assert.Contains(t, out, "No appointments found.")
}

func TestFormatBookingConfirmation(t *testing.T) {
	out := FormatBookingConfirmation(&domain.Appointment{
		ID:         "12345678-aaaa-bbbb-cccc-dddddddddddd",
		Department: "Dentistry",
		Doctor:     "Dr. Smith",
		Date:       "2026-09-01",
		Time:       "10:30",
		Patient:    "Jane Doe",
	})

	assert.Contains(t, out, "Appointment booked")
	assert.Contains(t, out, "Dentistry")
	assert.Contains(t, out, "Dr. Smith")
	assert.Contains(t, out, "12345678")
}
