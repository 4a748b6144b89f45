// Package portal controls whether the booking window is open. The gate is
// a persisted setting so every server instance agrees on it; when the
// setting has never been written the portal is treated as closed.
package portal

import "time"

// Setting keys and the values the booking status accepts.
const (
	KeyBookingStatus = "booking_status"

	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Setting is a single persisted key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
