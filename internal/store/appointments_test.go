package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvule/clinicli/internal/domain"
)

func testAppointment(id, date, slot string) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		Department: "Dentistry",
		Date:       date,
		Time:       slot,
		Patient:    "Jane Doe",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestOpenAppointmentBook_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "appointments.json")

	book, err := OpenAppointmentBook(path)
	require.NoError(t, err)
	assert.Empty(t, book.List())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file bookFile
	require.NoError(t, json.Unmarshal(data, &file))
	assert.NotNil(t, file.Appointments)
	assert.Empty(t, file.Appointments)
}

func TestOpenAppointmentBook_LoadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	content := `{"appointments":[{"id":"a1","department":"ENT","date":"2026-09-01","time":"09:00","patient":"Jane Doe"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	book, err := OpenAppointmentBook(path)
	require.NoError(t, err)

	appts := book.List()
	require.Len(t, appts, 1)
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, "ENT", appts[0].Department)
}

func TestOpenAppointmentBook_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := OpenAppointmentBook(path)
	assert.Error(t, err)
}

func TestAppointmentBook_AppendPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	book, err := OpenAppointmentBook(path)
	require.NoError(t, err)

	require.NoError(t, book.Append(testAppointment("a1", "2026-09-01", "09:00")))

	// Reopen to verify the write reached disk.
	reopened, err := OpenAppointmentBook(path)
	require.NoError(t, err)
	appts := reopened.List()
	require.Len(t, appts, 1)
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, "Jane Doe", appts[0].Patient)
}

func TestAppointmentBook_ListByDate(t *testing.T) {
	book, err := OpenAppointmentBook(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)

	require.NoError(t, book.Append(testAppointment("a1", "2026-09-01", "09:00")))
	require.NoError(t, book.Append(testAppointment("a2", "2026-09-02", "09:00")))

	other := testAppointment("a3", "2026-09-01", "10:00")
	other.Department = "ENT"
	require.NoError(t, book.Append(other))

	byDate := book.ListByDate("2026-09-01", "")
	assert.Len(t, byDate, 2)

	byDept := book.ListByDate("2026-09-01", "Dentistry")
	require.Len(t, byDept, 1)
	assert.Equal(t, "a1", byDept[0].ID)

	assert.Empty(t, book.ListByDate("2026-09-03", ""))
}

func TestAppointmentBook_GetByID(t *testing.T) {
	book, err := OpenAppointmentBook(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)

	require.NoError(t, book.Append(testAppointment("a1", "2026-09-01", "09:00")))

	got, err := book.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = book.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentBook_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	book, err := OpenAppointmentBook(path)
	require.NoError(t, err)

	require.NoError(t, book.Append(testAppointment("a1", "2026-09-01", "09:00")))
	require.NoError(t, book.Append(testAppointment("a2", "2026-09-01", "09:30")))

	require.NoError(t, book.Remove("a1"))

	appts := book.List()
	require.Len(t, appts, 1)
	assert.Equal(t, "a2", appts[0].ID)

	assert.ErrorIs(t, book.Remove("a1"), ErrNotFound)

	// Removal reached disk.
	reopened, err := OpenAppointmentBook(path)
	require.NoError(t, err)
	assert.Len(t, reopened.List(), 1)
}
