package domain

import "time"

// Appointment is one booked slot in the appointment book.
// Date is "YYYY-MM-DD" and Time is "HH:MM", both kept as strings to
// match the on-disk JSON format.
type Appointment struct {
	ID         string    `json:"id"`
	Department string    `json:"department"`
	Doctor     string    `json:"doctor,omitempty"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Patient    string    `json:"patient"`
	CreatedAt  time.Time `json:"created_at"`
}
