package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tuanvule/clinicli/internal/domain"
)

// ErrNotFound indicates the requested appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// bookFile is the on-disk shape: a flat JSON array of appointment records
// under a single "appointments" key.
type bookFile struct {
	Appointments []*domain.Appointment `json:"appointments"`
}

// AppointmentBook is a JSON-file-backed store of appointments.
// The whole book is held in memory and rewritten atomically on change.
// Safe for concurrent use within a single process.
type AppointmentBook struct {
	mu           sync.Mutex
	path         string
	appointments []*domain.Appointment
}

// OpenAppointmentBook loads the book at path, creating an empty file
// (and its directory) when none exists yet.
func OpenAppointmentBook(path string) (*AppointmentBook, error) {
	b := &AppointmentBook{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return nil, fmt.Errorf("creating data directory: %w", mkErr)
		}
		if saveErr := b.save(); saveErr != nil {
			return nil, saveErr
		}
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading appointment book: %w", err)
	}

	var file bookFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing appointment book %s: %w", path, err)
	}
	b.appointments = file.Appointments
	return b, nil
}

// List returns all appointments. The returned slice is a copy; the
// records themselves are shared and must not be mutated by callers.
func (b *AppointmentBook) List() []*domain.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*domain.Appointment, len(b.appointments))
	copy(out, b.appointments)
	return out
}

// ListByDate returns appointments on date, optionally filtered by
// department display name (empty string matches all departments).
func (b *AppointmentBook) ListByDate(date, department string) []*domain.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*domain.Appointment
	for _, a := range b.appointments {
		if a.Date != date {
			continue
		}
		if department != "" && a.Department != department {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GetByID returns the appointment with the given ID.
func (b *AppointmentBook) GetByID(id string) (*domain.Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Append adds an appointment and persists the book.
func (b *AppointmentBook) Append(a *domain.Appointment) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appointments = append(b.appointments, a)
	if err := b.save(); err != nil {
		b.appointments = b.appointments[:len(b.appointments)-1]
		return err
	}
	return nil
}

// Remove deletes the appointment with the given ID and persists the book.
func (b *AppointmentBook) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, a := range b.appointments {
		if a.ID != id {
			continue
		}
		orig := b.appointments
		next := make([]*domain.Appointment, 0, len(orig)-1)
		next = append(next, orig[:i]...)
		next = append(next, orig[i+1:]...)
		b.appointments = next
		if err := b.save(); err != nil {
			// Keep memory matching disk when the write fails.
			b.appointments = orig
			return err
		}
		return nil
	}
	return ErrNotFound
}

// save writes the book atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (b *AppointmentBook) save() error {
	file := bookFile{Appointments: b.appointments}
	if file.Appointments == nil {
		file.Appointments = []*domain.Appointment{}
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling appointment book: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".appointments-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing appointment book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing appointment book: %w", err)
	}
	return nil
}
