package slots

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists master slot templates.
type Repository interface {
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*MasterSlot, error)
	Add(ctx context.Context, slot *MasterSlot) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Reset replaces the doctor's template with the given times in one
	// transaction; other doctors' templates are untouched.
	Reset(ctx context.Context, doctorID uuid.UUID, times []string) error
}
