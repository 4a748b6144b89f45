// Package staff manages clinic staff accounts: the doctors patients can
// book with and the admin accounts that operate the schedule.
package staff

import (
	"time"

	"github.com/google/uuid"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
)

// Staff is a clinic staff account. Password is never serialized.
type Staff struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Degree    string    `json:"degree,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one the system understands.
func ValidRole(role string) bool {
	switch role {
	case auth.RoleDoctor, auth.RoleAdmin, auth.RoleSuper:
		return true
	}
	return false
}
