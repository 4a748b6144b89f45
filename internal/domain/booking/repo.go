package booking

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists appointments. Insert must be atomic with respect to
// concurrent bookings of the same (doctor, date, slot): implementations
// return ErrSlotTaken when the slot is already held.
type Repository interface {
	Insert(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListTimes(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error)
	ListByDate(ctx context.Context, date string, doctorID *uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
