package service

import (
	"context"

	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/schedule"
)

// BookingRequest carries the fields needed to book an appointment.
// Department accepts a catalog code or display name.
type BookingRequest struct {
	Department string
	Doctor     string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM, must be a grid slot
	Patient    string
}

type BookingService interface {
	// Departments returns the clinic's department catalog.
	Departments() []domain.Department

	// Availability returns free slots per department on date.
	// An empty department returns all departments.
	Availability(ctx context.Context, date, department string) (schedule.Availability, error)

	// Book validates and records an appointment, returning it with its
	// assigned ID.
	Book(ctx context.Context, req BookingRequest) (*domain.Appointment, error)

	// ListByDate returns booked appointments on date, optionally filtered
	// by department.
	ListByDate(ctx context.Context, date, department string) ([]*domain.Appointment, error)

	// Cancel removes a booked appointment by ID.
	Cancel(ctx context.Context, id string) error
}

type TranscriptService interface {
	// StartConversation opens a new persisted conversation.
	StartConversation(ctx context.Context) (*domain.Conversation, error)

	// RecordExchange appends one user/assistant message pair.
	RecordExchange(ctx context.Context, conversationID, userInput, assistantReply string) error

	// GetTranscript returns a conversation and its messages in order.
	GetTranscript(ctx context.Context, id string) (*domain.Conversation, []*domain.Message, error)

	// ListRecent returns the most recently started conversations.
	ListRecent(ctx context.Context, limit int) ([]*domain.Conversation, error)

	// Export writes a conversation to a text file under dir and returns
	// the file path.
	Export(ctx context.Context, conversationID, dir string) (string, error)

	// Delete removes a conversation and its messages.
	Delete(ctx context.Context, id string) error
}
