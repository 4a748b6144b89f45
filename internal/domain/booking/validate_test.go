package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/opdclinic/opdclinic/internal/platform/clock"
)

// 2024-06-01 10:30 clinic time == 2024-06-01 05:00 UTC.
var fixedInstant = time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)

func TestValidateNotPast(t *testing.T) {
	now := clock.CivilNow(fixedInstant)

	tests := []struct {
		name     string
		date     string
		slotTime string
		wantErr  error
	}{
		{"future day", "2024-06-02", "00:00", nil},
		{"later today", "2024-06-01", "10:31", nil},
		{"same minute", "2024-06-01", "10:30", ErrPastTime},
		{"earlier today", "2024-06-01", "09:00", ErrPastTime},
		{"yesterday late", "2024-05-31", "23:59", ErrPastDate},
		{"next year", "2025-01-01", "09:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNotPast(now, tt.date, tt.slotTime)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("date %s %s: expected %v, got %v", tt.date, tt.slotTime, tt.wantErr, err)
			}
		})
	}
}

func TestValidateNotPast_MidnightRollover(t *testing.T) {
	// 2024-06-01 20:00 UTC is already 2024-06-02 01:30 clinic time.
	now := clock.CivilNow(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC))

	if err := validateNotPast(now, "2024-06-01", "23:00"); !errors.Is(err, ErrPastDate) {
		t.Errorf("expected ErrPastDate after clinic midnight, got %v", err)
	}
	if err := validateNotPast(now, "2024-06-02", "09:00"); err != nil {
		t.Errorf("expected the clinic's new day to be bookable, got %v", err)
	}
}

func TestValidateNotPast_MalformedInput(t *testing.T) {
	now := clock.CivilNow(fixedInstant)

	if err := validateNotPast(now, "01-06-2024", "09:00"); err == nil {
		t.Error("expected error for malformed date")
	}
	if err := validateNotPast(now, "2024-06-02", "9am"); err == nil {
		t.Error("expected error for malformed time")
	}
}
