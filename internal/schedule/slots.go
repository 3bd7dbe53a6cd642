package schedule

import (
	"fmt"
	"time"

	"github.com/tuanvule/clinicli/internal/domain"
)

// Clinic hours: every 30 minutes from 08:00 through 16:00 inclusive.
const (
	openHour    = 8
	closeHour   = 16
	slotStepMin = 30
)

// DateLayout is the wire and display format for appointment dates.
const DateLayout = "2006-01-02"

// DefaultSlots returns the full slot grid for one day.
func DefaultSlots() []string {
	var slots []string
	for h := openHour; h <= closeHour; h++ {
		for m := 0; m < 60; m += slotStepMin {
			if h == closeHour && m > 0 {
				break
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// IsGridSlot reports whether t ("HH:MM") is a valid slot on the grid.
func IsGridSlot(t string) bool {
	for _, s := range DefaultSlots() {
		if s == t {
			return true
		}
	}
	return false
}

// ValidateDate checks that date is a well-formed YYYY-MM-DD value.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, date)
	}
	return nil
}

// Availability maps department display names to their free slot times.
type Availability map[string][]string

// AvailableSlots computes the free slots on date for the given departments,
// subtracting booked appointments. Booked entries for departments outside
// the requested set are ignored.
func AvailableSlots(booked []*domain.Appointment, date string, departments []string) Availability {
	taken := make(map[string]map[string]bool, len(departments))
	for _, name := range departments {
		taken[name] = make(map[string]bool)
	}
	for _, appt := range booked {
		if appt.Date != date {
			continue
		}
		if times, ok := taken[appt.Department]; ok {
			times[appt.Time] = true
		}
	}

	grid := DefaultSlots()
	avail := make(Availability, len(departments))
	for _, name := range departments {
		var free []string
		for _, slot := range grid {
			if !taken[name][slot] {
				free = append(free, slot)
			}
		}
		avail[name] = free
	}
	return avail
}
