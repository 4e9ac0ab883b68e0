package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// memRepo is a linearizable in-memory BookingRepo with the same conditional-write
// semantics as the Postgres repository.
type memRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking

	transitions atomic.Int32
	// afterConfirm runs outside the lock once a confirmation is written.
	afterConfirm func(domain.CheckpointSubmission)
}

func newMemRepo(bookings ...*domain.Booking) *memRepo {
	r := &memRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = cloneBooking(b)
	}
	return r
}

func (r *memRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *memRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.OwnerID == userID || b.RenterID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *memRepo) ListStalled(context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if _, ok := b.StalledCheckpoint(); ok {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, t domain.Transition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[t.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != t.From {
		return domain.ErrConcurrentTransitionLost
	}
	switch t.Guard {
	case domain.ReportGuardAbsent:
		if b.HasConditionReport() {
			return domain.ErrConcurrentTransitionLost
		}
	case domain.ReportGuardPresent:
		if !b.HasConditionReport() {
			return domain.ErrConcurrentTransitionLost
		}
	}

	at := t.At
	b.Status = t.To
	b.UpdatedAt = at
	switch t.To {
	case domain.BookingStatusConfirmed:
		b.ConfirmedAt = &at
	case domain.BookingStatusInProgress:
		b.StartedAt = &at
	case domain.BookingStatusDisputed:
		b.DisputedAt = &at
	case domain.BookingStatusCompleted:
		b.CompletedAt = &at
	case domain.BookingStatusCancelled:
		b.CancelledAt = &at
		b.CancellationReason = t.Reason
	}
	r.transitions.Add(1)

	return nil
}

func (r *memRepo) ConfirmCheckpoint(_ context.Context, s domain.CheckpointSubmission) error {
	if err := r.confirm(s); err != nil {
		return err
	}
	if r.afterConfirm != nil {
		r.afterConfirm(s)
	}
	return nil
}

func (r *memRepo) confirm(s domain.CheckpointSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[s.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != s.Checkpoint.OpenStatus() {
		return domain.ErrConcurrentTransitionLost
	}

	state := b.Checkpoint(s.Checkpoint)
	var added []domain.EvidenceRecord
	for _, rec := range s.Evidence {
		if _, dup := state.FindEvidence(rec.ID); !dup {
			added = append(added, rec)
		}
	}
	if len(state.Evidence)+len(added) > domain.MaxEvidence(s.Checkpoint) {
		return domain.ErrEvidenceLimitExceeded
	}
	state.Evidence = append(state.Evidence, added...)

	at := s.At
	conf := domain.Confirmation{Confirmed: true, At: &at}
	if s.Role == domain.RoleOwner {
		state.ConfirmedByOwner = conf
	} else {
		state.ConfirmedByRenter = conf
	}

	if s.ConditionReport != "" {
		if s.Role == domain.RoleRenter {
			b.DamageReport = domain.DamageReport{Text: s.ConditionReport, ReportedBy: s.ActorID, ReportedAt: &at}
		} else {
			b.OwnerNotes = s.ConditionReport
		}
	}
	b.UpdatedAt = at

	return nil
}

func (r *memRepo) RemoveEvidence(_ context.Context, rm domain.EvidenceRemoval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[rm.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != rm.Checkpoint.OpenStatus() {
		return domain.ErrConcurrentTransitionLost
	}

	state := b.Checkpoint(rm.Checkpoint)
	kept := state.Evidence[:0]
	found := false
	for _, rec := range state.Evidence {
		if rec.ID == rm.EvidenceID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return domain.ErrEvidenceNotFound
	}
	state.Evidence = kept

	if rm.Role == domain.RoleOwner {
		state.ConfirmedByOwner = domain.Confirmation{}
	} else {
		state.ConfirmedByRenter = domain.Confirmation{}
	}

	return nil
}

func (r *memRepo) get(id string) *domain.Booking {
	b, _ := r.GetByID(context.Background(), id)
	return b
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.Pickup.Evidence = append([]domain.EvidenceRecord(nil), b.Pickup.Evidence...)
	c.Return.Evidence = append([]domain.EvidenceRecord(nil), b.Return.Evidence...)
	return &c
}

// recordingDispatcher counts notifications per action.
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n domain.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
}

func (d *recordingDispatcher) count(action domain.Action) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, s := range d.sent {
		if s.Action == action {
			n++
		}
	}
	return n
}

// passthroughViews always loads from the store.
type passthroughViews struct{}

func (passthroughViews) Booking(ctx context.Context, _ string, load func(context.Context) (*domain.Booking, error)) (*domain.Booking, error) {
	return load(ctx)
}

func (passthroughViews) UserBookings(ctx context.Context, _ string, load func(context.Context) ([]*domain.Booking, error)) ([]*domain.Booking, error) {
	return load(ctx)
}

const (
	ownerID  = "owner-1"
	renterID = "renter-1"
)

var (
	owner  = domain.Identity{UserID: ownerID}
	renter = domain.Identity{UserID: renterID}
)

func newBooking(id string, status domain.BookingStatus) *domain.Booking {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:        id,
		ListingID: "listing-1",
		OwnerID:   ownerID,
		RenterID:  renterID,
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		Status:    status,
		CreatedAt: start.Add(-48 * time.Hour),
		UpdatedAt: start.Add(-48 * time.Hour),
	}
}

func durableEvidence(id string, uploader string, role domain.Role) domain.EvidenceRecord {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return domain.EvidenceRecord{
		ID:           id,
		Media:        domain.DurableMedia("https://cdn.example.com/" + id + ".jpg"),
		ContentType:  "image/jpeg",
		CapturedAt:   at,
		UploadedAt:   &at,
		UploaderID:   uploader,
		UploaderRole: role,
	}
}
