// Package booking owns appointment creation and the invariant that a
// doctor's slot on a given date is booked at most once. Atomicity comes
// from the datastore's unique constraint on (doctor_id, date, slot_time):
// bookings insert unconditionally and a constraint violation means someone
// else won the slot.
package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	StatusBooked = "Booked"
	StatusDone   = "Done"
)

// Wire formats for the civil date and slot time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is one booked slot.
type Appointment struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	PatientAge  int       `json:"patient_age,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	SlotTime    string    `json:"slot_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
