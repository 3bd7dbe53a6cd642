package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvule/clinicli/internal/schedule"
	"github.com/tuanvule/clinicli/internal/store"
)

func newTestBooking(t *testing.T) BookingService {
	t.Helper()
	book, err := store.OpenAppointmentBook(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)
	return NewBookingService(book)
}

func TestBookingService_Book(t *testing.T) {
	svc := newTestBooking(t)

	appt, err := svc.Book(context.Background(), BookingRequest{
		Department: "d02",
		Doctor:     "Dr. Smith",
		Date:       "2026-09-01",
		Time:       "09:00",
		Patient:    "Jane Doe",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	// Department normalized to the display name.
	assert.Equal(t, "Dentistry", appt.Department)
	assert.Equal(t, "Jane Doe", appt.Patient)
	assert.False(t, appt.CreatedAt.IsZero())
}

func TestBookingService_Book_Validation(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, BookingRequest{Department: "ENT", Date: "not-a-date", Time: "09:00", Patient: "A B"})
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)

	_, err = svc.Book(ctx, BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:15", Patient: "A B"})
	assert.ErrorIs(t, err, schedule.ErrInvalidTime)

	_, err = svc.Book(ctx, BookingRequest{Department: "Cardiology", Date: "2026-09-01", Time: "09:00", Patient: "A B"})
	assert.ErrorIs(t, err, schedule.ErrUnknownDepartment)

	_, err = svc.Book(ctx, BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:00", Patient: "   "})
	assert.Error(t, err)
}

func TestBookingService_Book_SlotConflict(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	req := BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:00", Patient: "Jane Doe"}
	_, err := svc.Book(ctx, req)
	require.NoError(t, err)

	req.Patient = "John Roe"
	_, err = svc.Book(ctx, req)
	assert.ErrorIs(t, err, schedule.ErrSlotTaken)

	// Same slot in another department is fine.
	req.Department = "Dentistry"
	_, err = svc.Book(ctx, req)
	assert.NoError(t, err)
}

func TestBookingService_Availability(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:00", Patient: "Jane Doe"})
	require.NoError(t, err)

	all, err := svc.Availability(ctx, "2026-09-01", "")
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Len(t, all["ENT"], 16)
	assert.Len(t, all["Dentistry"], 17)

	one, err := svc.Availability(ctx, "2026-09-01", "ent")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.NotContains(t, one["ENT"], "09:00")

	_, err = svc.Availability(ctx, "2026-09-01", "Radiology")
	assert.ErrorIs(t, err, schedule.ErrUnknownDepartment)

	_, err = svc.Availability(ctx, "bad-date", "")
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestBookingService_ListByDate(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:00", Patient: "Jane Doe"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, BookingRequest{Department: "Dentistry", Date: "2026-09-01", Time: "09:00", Patient: "John Roe"})
	require.NoError(t, err)

	all, err := svc.ListByDate(ctx, "2026-09-01", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dent, err := svc.ListByDate(ctx, "2026-09-01", "D02")
	require.NoError(t, err)
	require.Len(t, dent, 1)
	assert.Equal(t, "John Roe", dent[0].Patient)
}

func TestBookingService_Cancel_ByPrefix(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	appt, err := svc.Book(ctx, BookingRequest{Department: "ENT", Date: "2026-09-01", Time: "09:00", Patient: "Jane Doe"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, appt.ID[:8]))

	remaining, err := svc.ListByDate(ctx, "2026-09-01", "")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestBookingService_Cancel_Errors(t *testing.T) {
	svc := newTestBooking(t)
	ctx := context.Background()

	err := svc.Cancel(ctx, "ab")
	assert.ErrorContains(t, err, "too short")

	err = svc.Cancel(ctx, "deadbeef")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
