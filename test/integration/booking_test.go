package integration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opdclinic/opdclinic/internal/domain/booking"
	"github.com/opdclinic/opdclinic/internal/domain/portal"
	"github.com/opdclinic/opdclinic/internal/domain/staff"
	"github.com/opdclinic/opdclinic/internal/platform/auth"
	"github.com/opdclinic/opdclinic/internal/platform/clock"
	"github.com/opdclinic/opdclinic/internal/platform/ws"
)

// Clinic time for every test: 2024-06-01 10:30.
var testClock = clock.Fixed{Instant: time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)}

func newBookingService(t *testing.T, ctx context.Context, pub ws.Publisher) (*booking.Service, uuid.UUID) {
	t.Helper()

	staffSvc := staff.NewService(staff.NewRepoPG(globalDB.Pool))
	doctor := &staff.Staff{Username: "rao", Password: "p", Name: "Dr. Rao", Role: auth.RoleDoctor}
	if err := staffSvc.Create(ctx, doctor); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	portalSvc := portal.NewService(portal.NewSettingRepoPG(globalDB.Pool))
	if err := portalSvc.SetStatus(ctx, portal.StatusOpen); err != nil {
		t.Fatalf("open portal: %v", err)
	}

	svc := booking.NewService(booking.NewRepoPG(globalDB.Pool), portalSvc, testClock, pub, zerolog.Nop())
	return svc, doctor.ID
}

// countingPublisher records published events.
type countingPublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *countingPublisher) Publish(_ context.Context, event ws.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *countingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// TestConcurrentBookingSingleWinner drives real concurrent inserts against
// Postgres: the unique index must admit exactly one row per slot.
func TestConcurrentBookingSingleWinner(t *testing.T) {
	ctx := context.Background()
	truncateAll(t, ctx)

	pub := &countingPublisher{}
	svc, doctorID := newBookingService(t, ctx, pub)

	const attempts = 16
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Book(ctx, booking.BookRequest{
				DoctorID:    doctorID,
				PatientID:   fmt.Sprintf("user-%d", i),
				PatientName: fmt.Sprintf("Patient %d", i),
				Date:        "2024-06-02",
				SlotTime:    "09:20",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, booking.ErrSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
	if conflicts != attempts-1 {
		t.Errorf("expected %d conflicts, got %d", attempts-1, conflicts)
	}

	var rows int
	if err := globalDB.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments`).Scan(&rows); err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 persisted appointment, got %d", rows)
	}
	if pub.count() != 1 {
		t.Errorf("expected exactly one broadcast, got %d", pub.count())
	}
}

func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	truncateAll(t, ctx)

	pub := &countingPublisher{}
	svc, doctorID := newBookingService(t, ctx, pub)

	appt, err := svc.Book(ctx, booking.BookRequest{
		DoctorID:    doctorID,
		PatientID:   "user-1",
		PatientName: "Asha",
		Date:        "2024-06-02",
		SlotTime:    "10:00",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	times, err := svc.BookedTimes(ctx, doctorID, "2024-06-02")
	if err != nil {
		t.Fatalf("booked times: %v", err)
	}
	if len(times) != 1 || times[0] != "10:00" {
		t.Errorf("unexpected booked times: %v", times)
	}

	if err := svc.MarkDone(ctx, appt.ID); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	stored, err := svc.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != booking.StatusDone {
		t.Errorf("expected Done, got %s", stored.Status)
	}

	// Cancelling frees the slot for someone else.
	if err := svc.Delete(ctx, appt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Book(ctx, booking.BookRequest{
		DoctorID:    doctorID,
		PatientID:   "user-2",
		PatientName: "Ravi",
		Date:        "2024-06-02",
		SlotTime:    "10:00",
	}); err != nil {
		t.Errorf("slot should be rebookable after cancellation: %v", err)
	}
}

func TestBookingClosedPortal(t *testing.T) {
	ctx := context.Background()
	truncateAll(t, ctx)

	pub := &countingPublisher{}
	svc, doctorID := newBookingService(t, ctx, pub)

	portalSvc := portal.NewService(portal.NewSettingRepoPG(globalDB.Pool))
	if err := portalSvc.SetStatus(ctx, portal.StatusClosed); err != nil {
		t.Fatalf("close portal: %v", err)
	}

	_, err := svc.Book(ctx, booking.BookRequest{
		DoctorID:    doctorID,
		PatientID:   "user-1",
		PatientName: "Asha",
		Date:        "2024-06-02",
		SlotTime:    "09:20",
	})
	if !errors.Is(err, booking.ErrPortalClosed) {
		t.Fatalf("expected ErrPortalClosed, got %v", err)
	}
	if pub.count() != 0 {
		t.Error("closed portal must not broadcast")
	}
}
