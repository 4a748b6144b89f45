package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opdclinic/opdclinic/internal/platform/db"
)

// ErrNotFound marks an appointment without a prescription.
var ErrNotFound = errors.New("prescription not found")

// AppointmentCompleter marks an appointment as done once its prescription
// is written.
type AppointmentCompleter interface {
	MarkDone(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo      Repository
	completer AppointmentCompleter
	logger    zerolog.Logger
}

func NewService(repo Repository, completer AppointmentCompleter, logger zerolog.Logger) *Service {
	return &Service{repo: repo, completer: completer, logger: logger}
}

// Create stores a prescription and completes its appointment.
func (s *Service) Create(ctx context.Context, p *Prescription) error {
	if p.AppointmentID == uuid.Nil || p.DoctorID == uuid.Nil {
		return errors.New("appointment_id and doctor_id are required")
	}
	if len(p.Medicines) == 0 {
		return errors.New("at least one medicine is required")
	}
	for i, m := range p.Medicines {
		if m.Name == "" || m.Dosage == "" {
			return fmt.Errorf("medicine %d: name and dosage are required", i+1)
		}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if db.IsUniqueViolation(err) {
			return errors.New("appointment already has a prescription")
		}
		return fmt.Errorf("create prescription: %w", err)
	}

	if err := s.completer.MarkDone(ctx, p.AppointmentID); err != nil {
		// The prescription is saved; the status lags until the admin
		// console retries the done toggle.
		s.logger.Warn().Err(err).
			Str("appointment_id", p.AppointmentID.String()).
			Msg("failed to mark appointment done")
	}
	return nil
}

// GetByAppointment returns the prescription for one visit.
func (s *Service) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Detail, error) {
	d, err := s.repo.GetByAppointment(ctx, appointmentID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return d, nil
}

// History returns a patient's prescriptions, newest visit first.
func (s *Service) History(ctx context.Context, patientID string) ([]*Detail, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return items, nil
}
