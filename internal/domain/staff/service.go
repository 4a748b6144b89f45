package staff

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
	"github.com/opdclinic/opdclinic/internal/platform/db"
)

// ErrInvalidCredentials is returned for a bad username/password pair. The
// same error covers both cases so responses do not reveal which field was
// wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies a username/password pair and returns the account.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Staff, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get staff by username: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Create adds a staff account after validating its fields.
func (s *Service) Create(ctx context.Context, account *Staff) error {
	if account.Username == "" || account.Password == "" || account.Name == "" {
		return errors.New("username, password and name are required")
	}
	if account.Role == "" {
		account.Role = auth.RoleAdmin
	}
	if !ValidRole(account.Role) {
		return fmt.Errorf("unknown role %q", account.Role)
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("username %q is taken", account.Username)
		}
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

// ListDoctors returns the accounts patients can book with.
func (s *Service) ListDoctors(ctx context.Context) ([]*Staff, error) {
	doctors, err := s.repo.ListByRole(ctx, auth.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

// GetName returns the display name for a staff id.
func (s *Service) GetName(ctx context.Context, id uuid.UUID) (string, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get staff: %w", err)
	}
	return account.Name, nil
}

// List returns every staff account.
func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.repo.List(ctx)
}

// Delete removes a staff account.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
