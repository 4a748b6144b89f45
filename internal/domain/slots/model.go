// Package slots manages the per-doctor master slot templates that the
// patient portal renders as a bookable grid. Slots carry a wall-clock time
// only; the booking flow pairs them with a calendar date.
package slots

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DefaultSlotTimes is the canonical morning schedule applied by a reset.
var DefaultSlotTimes = []string{
	"09:00", "09:20", "09:40",
	"10:00", "10:20", "10:40",
	"11:00", "11:20", "11:40",
}

var slotTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidSlotTime reports whether value is a 24-hour HH:MM string.
func ValidSlotTime(value string) bool {
	return slotTimeRe.MatchString(value)
}

// MasterSlot is one bookable time in a doctor's daily template.
type MasterSlot struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	SlotTime  string    `json:"slot_time"`
	CreatedAt time.Time `json:"created_at"`
}
