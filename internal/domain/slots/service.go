package slots

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opdclinic/opdclinic/internal/platform/db"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByDoctor returns the doctor's template ordered by time of day.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*MasterSlot, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return items, nil
}

// Add appends one time to a doctor's template.
func (s *Service) Add(ctx context.Context, doctorID uuid.UUID, slotTime string) (*MasterSlot, error) {
	if !ValidSlotTime(slotTime) {
		return nil, fmt.Errorf("slot time %q is not a valid HH:MM time", slotTime)
	}
	slot := &MasterSlot{DoctorID: doctorID, SlotTime: slotTime}
	if err := s.repo.Add(ctx, slot); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("slot %s already exists for this doctor", slotTime)
		}
		return nil, fmt.Errorf("add slot: %w", err)
	}
	return slot, nil
}

// Delete removes one slot from a template.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// ResetDefaults replaces the doctor's template with the canonical morning
// schedule. Existing bookings are unaffected; only the template changes.
func (s *Service) ResetDefaults(ctx context.Context, doctorID uuid.UUID) error {
	if err := s.repo.Reset(ctx, doctorID, DefaultSlotTimes); err != nil {
		return fmt.Errorf("reset slots: %w", err)
	}
	return nil
}
