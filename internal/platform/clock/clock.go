// Package clock provides clinic-local civil time. All booking decisions use
// a fixed UTC+05:30 offset derived from the UTC instant, never the host
// machine's local timezone, so behavior does not depend on where the server
// is deployed.
package clock

import "time"

// ClinicZone is the fixed civil timezone of the clinic (IST, UTC+05:30).
var ClinicZone = time.FixedZone("UTC+05:30", 5*3600+30*60)

// Clock supplies the current instant. Production code uses System; tests
// substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// System reads the genuine wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// Civil holds clinic-local calendar and wall-clock fields.
type Civil struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// CivilNow converts a UTC instant into clinic-local civil fields.
func CivilNow(instant time.Time) Civil {
	local := instant.In(ClinicZone)
	return Civil{
		Year:   local.Year(),
		Month:  int(local.Month()),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

// DateBefore reports whether calendar date a is strictly earlier than b.
func (a Civil) DateBefore(b Civil) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

// SameDate reports whether a and b fall on the same calendar date.
func (a Civil) SameDate(b Civil) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// TimeAtOrBefore reports whether a's wall-clock time is at or before b's.
// The equal case counts: a slot in the current minute is already unbookable.
func (a Civil) TimeAtOrBefore(b Civil) bool {
	if a.Hour != b.Hour {
		return a.Hour < b.Hour
	}
	return a.Minute <= b.Minute
}
