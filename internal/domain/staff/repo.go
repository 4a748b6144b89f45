package staff

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists staff accounts.
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	ListByRole(ctx context.Context, role string) ([]*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
