package prescription

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists prescriptions.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Detail, error)
	// ListByPatient returns the patient's prescriptions, newest visit first.
	ListByPatient(ctx context.Context, patientID string) ([]*Detail, error)
}
