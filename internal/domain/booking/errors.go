package booking

import "errors"

// Booking rejections the HTTP layer maps to distinct status codes.
var (
	// ErrPortalClosed means the booking window is not open.
	ErrPortalClosed = errors.New("booking portal is closed")

	// ErrPastDate means the requested date is before today in clinic time.
	ErrPastDate = errors.New("cannot book a past date")

	// ErrPastTime means the requested slot today has already started.
	ErrPastTime = errors.New("cannot book a past time slot")

	// ErrSlotTaken means another booking holds the slot.
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrInvalidInput means the request itself is malformed or incomplete.
	// Wrapped errors carry the field-level detail.
	ErrInvalidInput = errors.New("invalid booking request")
)
