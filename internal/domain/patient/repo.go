package patient

import "context"

// Repository persists patient profiles.
type Repository interface {
	// Save records a first sign-in; saving an existing user is a no-op.
	Save(ctx context.Context, p *Patient) error
	Get(ctx context.Context, userID string) (*Patient, error)
	UpdateProfile(ctx context.Context, p *Patient) error
	UpdatePhoto(ctx context.Context, userID, photoURL string) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
