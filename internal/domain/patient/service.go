package patient

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/opdclinic/opdclinic/internal/platform/db"
)

// ErrNotFound marks an unknown patient user id.
var ErrNotFound = errors.New("patient not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save records a sign-in. Saving the same user twice is a no-op, so the
// portal can call it on every login.
func (s *Service) Save(ctx context.Context, p *Patient) error {
	if p.UserID == "" || p.Name == "" {
		return errors.New("user_id and name are required")
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("save patient: %w", err)
	}
	return nil
}

// Get returns one profile.
func (s *Service) Get(ctx context.Context, userID string) (*Patient, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

// UpdateProfile replaces the editable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, p *Patient) error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.Age < 0 || p.Age > 150 {
		return errors.New("age is out of range")
	}
	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdatePhoto stores the profile photo URL.
func (s *Service) UpdatePhoto(ctx context.Context, userID, photoURL string) error {
	if userID == "" {
		return errors.New("user_id is required")
	}
	if _, err := url.ParseRequestURI(photoURL); err != nil {
		return fmt.Errorf("photo_url is not a valid URL: %w", err)
	}
	if err := s.repo.UpdatePhoto(ctx, userID, photoURL); err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	return nil
}

// List returns patient profiles for the admin console.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}
