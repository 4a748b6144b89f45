// Package patient stores patient profiles. Patients are keyed by the
// external user id minted by the portal's identity provider, not by a
// database id, so repeat sign-ins are idempotent.
package patient

import "time"

// Patient is one portal user's profile.
type Patient struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Address   string    `json:"address,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
