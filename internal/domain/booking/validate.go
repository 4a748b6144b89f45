package booking

import (
	"fmt"
	"time"

	"github.com/opdclinic/opdclinic/internal/platform/clock"
)

// parseCivil turns wire date and time strings into a civil timestamp.
func parseCivil(date, slotTime string) (clock.Civil, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return clock.Civil{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	t, err := time.Parse(TimeLayout, slotTime)
	if err != nil {
		return clock.Civil{}, fmt.Errorf("%w: slot time must be HH:MM", ErrInvalidInput)
	}
	return clock.Civil{
		Year:   d.Year(),
		Month:  int(d.Month()),
		Day:    d.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}

// validateNotPast rejects slots at or before the clinic's current minute.
// Comparisons use the clinic's fixed zone, never the server's locale, so
// the boundary is identical on every instance. A slot equal to the current
// minute counts as past.
func validateNotPast(now clock.Civil, date, slotTime string) error {
	requested, err := parseCivil(date, slotTime)
	if err != nil {
		return err
	}
	if requested.DateBefore(now) {
		return ErrPastDate
	}
	if requested.SameDate(now) && requested.TimeAtOrBefore(now) {
		return ErrPastTime
	}
	return nil
}
