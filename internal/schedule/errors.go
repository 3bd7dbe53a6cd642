package schedule

import "errors"

var (
	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime indicates a time outside the clinic's slot grid.
	ErrInvalidTime = errors.New("time is not a clinic slot")

	// ErrUnknownDepartment indicates a department code or name that is
	// not in the catalog.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrSlotTaken indicates the requested department/date/time is
	// already booked.
	ErrSlotTaken = errors.New("slot already booked")
)
