package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvule/clinicli/internal/domain"
)

func TestDefaultSlots_Grid(t *testing.T) {
	slots := DefaultSlots()

	require.Len(t, slots, 17)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "15:30", slots[len(slots)-2])
	assert.Equal(t, "16:00", slots[len(slots)-1])
}

func TestIsGridSlot(t *testing.T) {
	assert.True(t, IsGridSlot("08:00"))
	assert.True(t, IsGridSlot("12:30"))
	assert.True(t, IsGridSlot("16:00"))

	assert.False(t, IsGridSlot("16:30"))
	assert.False(t, IsGridSlot("07:30"))
	assert.False(t, IsGridSlot("08:15"))
	assert.False(t, IsGridSlot("8:00"))
	assert.False(t, IsGridSlot(""))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-09-01"))

	assert.ErrorIs(t, ValidateDate("2026-13-01"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("01-09-2026"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("tomorrow"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate(""), ErrInvalidDate)
}

func TestAvailableSlots_SubtractsBooked(t *testing.T) {
	booked := []*domain.Appointment{
		{Department: "Dentistry", Date: "2026-09-01", Time: "09:00"},
		{Department: "Dentistry", Date: "2026-09-01", Time: "09:30"},
		{Department: "ENT", Date: "2026-09-01", Time: "09:00"},
		// Different date, must not affect availability.
		{Department: "Dentistry", Date: "2026-09-02", Time: "10:00"},
	}

	avail := AvailableSlots(booked, "2026-09-01", []string{"Dentistry", "ENT"})

	require.Len(t, avail["Dentistry"], 15)
	assert.NotContains(t, avail["Dentistry"], "09:00")
	assert.NotContains(t, avail["Dentistry"], "09:30")
	assert.Contains(t, avail["Dentistry"], "10:00")

	require.Len(t, avail["ENT"], 16)
	assert.NotContains(t, avail["ENT"], "09:00")
}

func TestAvailableSlots_IgnoresOtherDepartments(t *testing.T) {
	booked := []*domain.Appointment{
		{Department: "Dermatology", Date: "2026-09-01", Time: "08:00"},
	}

	avail := AvailableSlots(booked, "2026-09-01", []string{"Dentistry"})

	require.Len(t, avail, 1)
	assert.Len(t, avail["Dentistry"], 17)
}

func TestAvailableSlots_FullyBooked(t *testing.T) {
	var booked []*domain.Appointment
	for _, slot := range DefaultSlots() {
		booked = append(booked, &domain.Appointment{
			Department: "ENT", Date: "2026-09-01", Time: slot,
		})
	}

	avail := AvailableSlots(booked, "2026-09-01", []string{"ENT"})
	assert.Empty(t, avail["ENT"])
}
