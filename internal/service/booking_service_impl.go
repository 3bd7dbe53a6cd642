package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/schedule"
	"github.com/tuanvule/clinicli/internal/store"
)

type bookingService struct {
	book *store.AppointmentBook
}

// NewBookingService creates a BookingService over the given appointment book.
func NewBookingService(book *store.AppointmentBook) BookingService {
	return &bookingService{book: book}
}

func (s *bookingService) Departments() []domain.Department {
	return domain.Departments()
}

func (s *bookingService) Availability(ctx context.Context, date, department string) (schedule.Availability, error) {
	if err := schedule.ValidateDate(date); err != nil {
		return nil, err
	}

	departments := domain.DepartmentNames()
	if strings.TrimSpace(department) != "" {
		dept, ok := domain.ResolveDepartment(department)
		if !ok {
			return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownDepartment, department)
		}
		departments = []string{dept.Name}
	}

	booked := s.book.ListByDate(date, "")
	return schedule.AvailableSlots(booked, date, departments), nil
}

func (s *bookingService) Book(ctx context.Context, req BookingRequest) (*domain.Appointment, error) {
	if err := schedule.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	if !schedule.IsGridSlot(req.Time) {
		return nil, fmt.Errorf("%w: %q", schedule.ErrInvalidTime, req.Time)
	}
	dept, ok := domain.ResolveDepartment(req.Department)
	if !ok {
		return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownDepartment, req.Department)
	}
	patient := strings.TrimSpace(req.Patient)
	if patient == "" {
		return nil, fmt.Errorf("patient name is required")
	}

	for _, existing := range s.book.ListByDate(req.Date, dept.Name) {
		if existing.Time == req.Time {
			return nil, fmt.Errorf("%w: %s %s at %s", schedule.ErrSlotTaken, dept.Name, req.Date, req.Time)
		}
	}

	appt := &domain.Appointment{
		ID:         uuid.New().String(),
		Department: dept.Name,
		Doctor:     strings.TrimSpace(req.Doctor),
		Date:       req.Date,
		Time:       req.Time,
		Patient:    patient,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.book.Append(appt); err != nil {
		return nil, fmt.Errorf("saving appointment: %w", err)
	}
	return appt, nil
}

func (s *bookingService) ListByDate(ctx context.Context, date, department string) ([]*domain.Appointment, error) {
	if err := schedule.ValidateDate(date); err != nil {
		return nil, err
	}
	deptName := ""
	if strings.TrimSpace(department) != "" {
		dept, ok := domain.ResolveDepartment(department)
		if !ok {
			return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownDepartment, department)
		}
		deptName = dept.Name
	}
	return s.book.ListByDate(date, deptName), nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	resolved, err := s.resolveAppointmentID(id)
	if err != nil {
		return err
	}
	return s.book.Remove(resolved)
}

// resolveAppointmentID accepts a full ID or a unique prefix of at least
// four characters, as shown in the appointment listing.
func (s *bookingService) resolveAppointmentID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) < 4 {
		return "", fmt.Errorf("appointment ID %q is too short, use at least 4 characters", id)
	}

	var matches []string
	for _, a := range s.book.List() {
		if a.ID == id {
			return id, nil
		}
		if strings.HasPrefix(a.ID, id) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", store.ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("appointment ID %q is ambiguous (%d matches)", id, len(matches))
	}
}
