package portal

import (
	"context"
	"fmt"

	"github.com/opdclinic/opdclinic/internal/platform/db"
)

type Service struct {
	repo SettingRepository
}

func NewService(repo SettingRepository) *Service {
	return &Service{repo: repo}
}

// IsOpen reports whether patients may book. A setting that was never
// written counts as closed.
func (s *Service) IsOpen(ctx context.Context) (bool, error) {
	setting, err := s.repo.Get(ctx, KeyBookingStatus)
	if err != nil {
		if db.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get booking status: %w", err)
	}
	return setting.Value == StatusOpen, nil
}

// Status returns the current booking status string.
func (s *Service) Status(ctx context.Context) (string, error) {
	open, err := s.IsOpen(ctx)
	if err != nil {
		return "", err
	}
	if open {
		return StatusOpen, nil
	}
	return StatusClosed, nil
}

// SetStatus writes the booking status. Only "open" and "closed" are valid.
func (s *Service) SetStatus(ctx context.Context, status string) error {
	if status != StatusOpen && status != StatusClosed {
		return fmt.Errorf("status must be %q or %q", StatusOpen, StatusClosed)
	}
	if err := s.repo.Upsert(ctx, KeyBookingStatus, status); err != nil {
		return fmt.Errorf("set booking status: %w", err)
	}
	return nil
}
