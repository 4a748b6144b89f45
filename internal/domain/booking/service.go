package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opdclinic/opdclinic/internal/platform/clock"
	"github.com/opdclinic/opdclinic/internal/platform/ws"
)

// PortalGate reports whether patients may currently book.
type PortalGate interface {
	IsOpen(ctx context.Context) (bool, error)
}

type Service struct {
	repo      Repository
	gate      PortalGate
	clk       clock.Clock
	publisher ws.Publisher
	logger    zerolog.Logger
}

func NewService(repo Repository, gate PortalGate, clk clock.Clock, publisher ws.Publisher, logger zerolog.Logger) *Service {
	return &Service{repo: repo, gate: gate, clk: clk, publisher: publisher, logger: logger}
}

// BookRequest is a patient's attempt to claim a slot.
type BookRequest struct {
	DoctorID    uuid.UUID
	PatientID   string
	PatientName string
	PatientAge  int
	Phone       string
	Description string
	Date        string
	SlotTime    string
}

// Book claims a slot. Checks run in a fixed order: portal gate, then the
// past-time rule, then the atomic insert. The slot_booked event goes out
// only after the insert commits; no failure path broadcasts anything.
func (s *Service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	if req.DoctorID == uuid.Nil {
		return nil, fmt.Errorf("%w: doctor_id is required", ErrInvalidInput)
	}
	if req.PatientID == "" || req.PatientName == "" {
		return nil, fmt.Errorf("%w: patient_id and patient_name are required", ErrInvalidInput)
	}

	open, err := s.gate.IsOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("check portal: %w", err)
	}
	if !open {
		return nil, ErrPortalClosed
	}

	now := clock.CivilNow(s.clk.Now())
	if err := validateNotPast(now, req.Date, req.SlotTime); err != nil {
		return nil, err
	}

	appt := &Appointment{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge,
		Phone:       req.Phone,
		Description: req.Description,
		Date:        req.Date,
		SlotTime:    req.SlotTime,
	}
	if err := s.repo.Insert(ctx, appt); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	event := ws.SlotBooked(appt.Date, appt.SlotTime, appt.DoctorID.String())
	if err := s.publisher.Publish(ctx, event); err != nil {
		// The booking is durable; a lost broadcast only delays other
		// portals until their next refresh.
		s.logger.Warn().Err(err).
			Str("doctor_id", appt.DoctorID.String()).
			Str("date", appt.Date).
			Str("slot_time", appt.SlotTime).
			Msg("failed to broadcast booking")
	}

	return appt, nil
}

// BookedTimes lists the taken slot times for a doctor on a date.
func (s *Service) BookedTimes(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error) {
	if _, err := parseCivil(date, "00:00"); err != nil {
		return nil, err
	}
	times, err := s.repo.ListTimes(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}
	return times, nil
}

// ListByDate returns appointments on a date, optionally for one doctor.
func (s *Service) ListByDate(ctx context.Context, date string, doctorID *uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	items, total, err := s.repo.ListByDate(ctx, date, doctorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	return items, total, nil
}

// ListByPatient returns a patient's appointments, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	return items, nil
}

// MarkDone flags an appointment as completed.
func (s *Service) MarkDone(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkDone(ctx, id); err != nil {
		return fmt.Errorf("mark appointment done: %w", err)
	}
	return nil
}

// Delete cancels an appointment, freeing its slot for rebooking.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// Get returns one appointment by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}
