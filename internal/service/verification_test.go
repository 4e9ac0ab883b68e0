package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/RentalHandover/internal/capture"
	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verificationFixture struct {
	repo       *memRepo
	store      *mocks.MockEvidenceStore
	dispatcher *recordingDispatcher
	svc        *VerificationService
}

func newVerificationFixture(t *testing.T, seed ...*domain.Booking) *verificationFixture {
	t.Helper()

	log := newTestLogger(t)
	spool, err := capture.NewSpool(t.TempDir())
	require.NoError(t, err)

	repo := newMemRepo(seed...)
	store := mocks.NewMockEvidenceStore(t)
	d := &recordingDispatcher{}
	bookings := NewBookingService(repo, passthroughViews{}, d, log)

	return &verificationFixture{
		repo:       repo,
		store:      store,
		dispatcher: d,
		svc: NewVerificationService(repo, store, capture.NewCapturer(spool, nil, log),
			bookings, d, NewWorkingSets(), time.Hour, log),
	}
}

func (f *verificationFixture) uploadsSucceed() {
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.UploadRequest) (string, error) {
			return "https://cdn.example.com/" + req.Record.ID + ".jpg", nil
		}).Maybe()
}

func (f *verificationFixture) capture(t *testing.T, id domain.Identity, bookingID string, cp domain.Checkpoint, n int) []domain.EvidenceRecord {
	t.Helper()

	var out []domain.EvidenceRecord
	for i := 0; i < n; i++ {
		rec, err := f.svc.Capture(context.Background(), id, bookingID, cp, capture.UploadedPhoto{
			Body:        strings.NewReader("jpeg-bytes"),
			ContentType: "image/jpeg",
		})
		require.NoError(t, err)
		out = append(out, rec)
	}
	return out
}

func (f *verificationFixture) submit(id domain.Identity, bookingID string, cp domain.Checkpoint, report string) (*domain.SubmitResult, error) {
	return f.svc.Submit(context.Background(), id, domain.SubmitInput{
		BookingID:       bookingID,
		Checkpoint:      cp,
		ConditionReport: report,
	})
}

func TestVerification_PickupRenterMinimum(t *testing.T) {
	tests := []struct {
		name    string
		photos  int
		wantErr error
	}{
		{name: "two photos", photos: 2, wantErr: domain.ErrInsufficientEvidence},
		{name: "three photos", photos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
			f.uploadsSucceed()
			f.capture(t, renter, "b1", domain.CheckpointPickup, tt.photos)

			res, err := f.submit(renter, "b1", domain.CheckpointPickup, "")

			stored := f.repo.get("b1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, stored.Pickup.ConfirmedByRenter.Confirmed)
				assert.Empty(t, stored.Pickup.Evidence)
				assert.Len(t, f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup), tt.photos)
				assert.Zero(t, f.dispatcher.count(domain.ActionPickup))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeWait, res.Outcome)
			assert.False(t, res.Transitioned)
			assert.True(t, stored.Pickup.ConfirmedByRenter.Confirmed)
			assert.NotNil(t, stored.Pickup.ConfirmedByRenter.At)
			require.Len(t, stored.Pickup.Evidence, tt.photos)
			for _, rec := range stored.Pickup.Evidence {
				assert.True(t, rec.Media.Durable())
				assert.Equal(t, renterID, rec.UploaderID)
				assert.Equal(t, domain.RoleRenter, rec.UploaderRole)
			}
			assert.Empty(t, f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup))
			assert.Equal(t, 1, f.dispatcher.count(domain.ActionPickup))
		})
	}
}

func TestVerification_PickupOwnerNeedsNoPhotos(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))

	res, err := f.submit(owner, "b1", domain.CheckpointPickup, "")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWait, res.Outcome)
	assert.True(t, f.repo.get("b1").Pickup.ConfirmedByOwner.Confirmed)
}

func TestVerification_OperatorBypassesMinimum(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))

	_, err := f.submit(domain.Identity{UserID: renterID, Admin: true}, "b1", domain.CheckpointPickup, "")

	require.NoError(t, err)
	assert.True(t, f.repo.get("b1").Pickup.ConfirmedByRenter.Confirmed)
}

func TestVerification_OneSidedPickupCompletes(t *testing.T) {
	b := newBooking("b1", domain.BookingStatusConfirmed)
	b.Pickup.ConfirmedByOwner = domain.Confirmation{Confirmed: true}
	f := newVerificationFixture(t, b)
	f.uploadsSucceed()
	f.capture(t, renter, "b1", domain.CheckpointPickup, 3)

	res, err := f.submit(renter, "b1", domain.CheckpointPickup, "")

	require.NoError(t, err)
	assert.True(t, res.Transitioned)
	assert.Equal(t, domain.OutcomeComplete, res.Outcome)
	assert.Equal(t, domain.BookingStatusInProgress, res.Booking.Status)

	stored := f.repo.get("b1")
	assert.Equal(t, domain.BookingStatusInProgress, stored.Status)
	assert.NotNil(t, stored.StartedAt)
	assert.EqualValues(t, 1, f.repo.transitions.Load())
	assert.Equal(t, 1, f.dispatcher.count(domain.ActionPickup))
}

func TestVerification_PickupMaximum(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	f.capture(t, renter, "b1", domain.CheckpointPickup, domain.PickupMaxEvidence)

	_, err := f.svc.Capture(context.Background(), renter, "b1", domain.CheckpointPickup, capture.UploadedPhoto{
		Body: strings.NewReader("jpeg-bytes"),
	})

	assert.ErrorIs(t, err, domain.ErrEvidenceLimitExceeded)
}

func TestVerification_ReturnMinimum(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusInProgress))
	f.uploadsSucceed()
	f.capture(t, owner, "b1", domain.CheckpointReturn, 1)

	_, err := f.submit(owner, "b1", domain.CheckpointReturn, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientEvidence)

	f.capture(t, owner, "b1", domain.CheckpointReturn, 1)
	_, err = f.submit(owner, "b1", domain.CheckpointReturn, "")
	require.NoError(t, err)
	assert.Len(t, f.repo.get("b1").Return.Evidence, 2)
}

func TestVerification_Stranger(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	stranger := domain.Identity{UserID: "someone"}

	_, err := f.submit(stranger, "b1", domain.CheckpointPickup, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.Capture(context.Background(), stranger, "b1", domain.CheckpointPickup, capture.UploadedPhoto{
		Body: strings.NewReader("jpeg-bytes"),
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerification_ClosedCheckpoint(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusPending))

	_, err := f.svc.Capture(context.Background(), renter, "b1", domain.CheckpointPickup, capture.UploadedPhoto{
		Body: strings.NewReader("jpeg-bytes"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.submit(renter, "b1", domain.CheckpointReturn, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestVerification_ReportOnlyAtReturn(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))

	_, err := f.submit(owner, "b1", domain.CheckpointPickup, "dent on the door")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerification_ResubmitIsIdempotent(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	f.uploadsSucceed()
	f.capture(t, renter, "b1", domain.CheckpointPickup, 3)

	_, err := f.submit(renter, "b1", domain.CheckpointPickup, "")
	require.NoError(t, err)
	before := f.repo.get("b1")

	res, err := f.submit(renter, "b1", domain.CheckpointPickup, "")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWait, res.Outcome)
	after := f.repo.get("b1")
	assert.Equal(t, before.Pickup, after.Pickup)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, 1, f.dispatcher.count(domain.ActionPickup))
	f.store.AssertNumberOfCalls(t, "Upload", 3)
}

func TestVerification_ReturnOutcome(t *testing.T) {
	tests := []struct {
		name         string
		renterReport string
		ownerReport  string
		want         domain.BookingStatus
	}{
		{name: "clean", want: domain.BookingStatusCompleted},
		{name: "damage report", renterReport: "cracked screen", want: domain.BookingStatusDisputed},
		{name: "owner notes", ownerReport: "missing charger", want: domain.BookingStatusDisputed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusInProgress))
			f.uploadsSucceed()
			f.capture(t, renter, "b1", domain.CheckpointReturn, 2)

			res, err := f.submit(renter, "b1", domain.CheckpointReturn, tt.renterReport)
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeWait, res.Outcome)

			res, err = f.submit(owner, "b1", domain.CheckpointReturn, tt.ownerReport)
			require.NoError(t, err)
			assert.True(t, res.Transitioned)

			stored := f.repo.get("b1")
			assert.Equal(t, tt.want, stored.Status)
			if tt.want == domain.BookingStatusCompleted {
				assert.Equal(t, domain.OutcomeComplete, res.Outcome)
				assert.NotNil(t, stored.CompletedAt)
			} else {
				assert.Equal(t, domain.OutcomeDispute, res.Outcome)
				assert.NotNil(t, stored.DisputedAt)
			}
			if tt.renterReport != "" {
				assert.Equal(t, tt.renterReport, stored.DamageReport.Text)
				assert.Equal(t, renterID, stored.DamageReport.ReportedBy)
			}
			assert.Equal(t, tt.ownerReport, stored.OwnerNotes)
			assert.Equal(t, 2, f.dispatcher.count(domain.ActionReturn))
		})
	}
}

func TestVerification_ReportAfterCounterpartConfirmed(t *testing.T) {
	b := newBooking("b1", domain.BookingStatusInProgress)
	b.Return.Evidence = []domain.EvidenceRecord{
		durableEvidence("e1", ownerID, domain.RoleOwner),
		durableEvidence("e2", ownerID, domain.RoleOwner),
	}
	b.Return.ConfirmedByOwner = domain.Confirmation{Confirmed: true}
	f := newVerificationFixture(t, b)

	res, err := f.submit(renter, "b1", domain.CheckpointReturn, "battery swollen")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDispute, res.Outcome)
	assert.Equal(t, domain.BookingStatusDisputed, f.repo.get("b1").Status)
}

func TestVerification_ConcurrentReturnSubmissions(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   domain.BookingStatus
	}{
		{name: "clean", want: domain.BookingStatusCompleted},
		{name: "with damage report", report: "torn strap", want: domain.BookingStatusDisputed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusInProgress))
			f.uploadsSucceed()
			f.capture(t, renter, "b1", domain.CheckpointReturn, 2)
			f.capture(t, owner, "b1", domain.CheckpointReturn, 2)

			// Both flags are written before either submitter re-reads.
			var written sync.WaitGroup
			written.Add(2)
			f.repo.afterConfirm = func(domain.CheckpointSubmission) {
				written.Done()
				written.Wait()
			}

			var (
				wg      sync.WaitGroup
				results [2]*domain.SubmitResult
				errs    [2]error
			)
			wg.Add(2)
			go func() {
				defer wg.Done()
				results[0], errs[0] = f.submit(renter, "b1", domain.CheckpointReturn, tt.report)
			}()
			go func() {
				defer wg.Done()
				results[1], errs[1] = f.submit(owner, "b1", domain.CheckpointReturn, "")
			}()
			wg.Wait()

			require.NoError(t, errs[0])
			require.NoError(t, errs[1])
			assert.EqualValues(t, 1, f.repo.transitions.Load())
			assert.NotEqual(t, results[0].Transitioned, results[1].Transitioned)
			assert.Equal(t, tt.want, results[0].Booking.Status)
			assert.Equal(t, tt.want, results[1].Booking.Status)
			assert.Equal(t, tt.want, f.repo.get("b1").Status)
			assert.Len(t, f.repo.get("b1").Return.Evidence, 4)
			assert.Equal(t, 2, f.dispatcher.count(domain.ActionReturn))
		})
	}
}

func TestVerification_UploadFailureKeepsProgress(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	captured := f.capture(t, renter, "b1", domain.CheckpointPickup, 3)

	f.store.EXPECT().Upload(mock.Anything, mock.Anything).Return("https://cdn.example.com/first.jpg", nil).Once()
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	_, err := f.submit(renter, "b1", domain.CheckpointPickup, "")

	require.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.False(t, f.repo.get("b1").Pickup.ConfirmedByRenter.Confirmed)

	ws := f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup)
	require.Len(t, ws, 3)
	assert.Equal(t, captured[0].ID, ws[0].ID)
	assert.True(t, ws[0].Media.Durable())
	assert.False(t, ws[1].Media.Durable())
	assert.False(t, ws[2].Media.Durable())

	f.uploadsSucceed()
	_, err = f.submit(renter, "b1", domain.CheckpointPickup, "")

	require.NoError(t, err)
	assert.Len(t, f.repo.get("b1").Pickup.Evidence, 3)
	f.store.AssertNumberOfCalls(t, "Upload", 4)
}

func TestVerification_ConcurrentSubmissionsRespectCap(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusInProgress))
	f.capture(t, renter, "b1", domain.CheckpointReturn, 6)
	f.capture(t, owner, "b1", domain.CheckpointReturn, 6)

	// Both submitters pass the snapshot check before either writes.
	var checked sync.WaitGroup
	checked.Add(2)
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.UploadRequest) (string, error) {
			if req.Seq == 0 {
				checked.Done()
				checked.Wait()
			}
			return "https://cdn.example.com/" + req.Record.ID + ".jpg", nil
		})

	var (
		wg   sync.WaitGroup
		errs [2]error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.submit(renter, "b1", domain.CheckpointReturn, "")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.submit(owner, "b1", domain.CheckpointReturn, "")
	}()
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrEvidenceLimitExceeded)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	b := f.repo.get("b1")
	assert.Len(t, b.Return.Evidence, 6)
	assert.Equal(t, domain.BookingStatusInProgress, b.Status)
	assert.NotEqual(t, b.Return.ConfirmedByRenter.Confirmed, b.Return.ConfirmedByOwner.Confirmed)
	assert.Equal(t, 1, f.dispatcher.count(domain.ActionReturn))
}

func TestVerification_CaptureDuringFailedUploadIsKept(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	captured := f.capture(t, renter, "b1", domain.CheckpointPickup, 3)

	var late []domain.EvidenceRecord
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.UploadRequest) (string, error) {
			late = f.capture(t, renter, "b1", domain.CheckpointPickup, 1)
			return "https://cdn.example.com/first.jpg", nil
		}).Once()
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	_, err := f.submit(renter, "b1", domain.CheckpointPickup, "")
	require.ErrorIs(t, err, domain.ErrUploadFailed)

	ws := f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup)
	require.Len(t, ws, 4)
	assert.Equal(t, captured[0].ID, ws[0].ID)
	assert.True(t, ws[0].Media.Durable())
	assert.Equal(t, late[0].ID, ws[3].ID)
	assert.False(t, ws[3].Media.Durable())
}

func TestVerification_CaptureDuringSubmitSurvives(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	f.capture(t, renter, "b1", domain.CheckpointPickup, 3)

	var late []domain.EvidenceRecord
	f.store.EXPECT().Upload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.UploadRequest) (string, error) {
			if req.Seq == 0 {
				late = f.capture(t, renter, "b1", domain.CheckpointPickup, 1)
			}
			return "https://cdn.example.com/" + req.Record.ID + ".jpg", nil
		})

	_, err := f.submit(renter, "b1", domain.CheckpointPickup, "")
	require.NoError(t, err)

	assert.Len(t, f.repo.get("b1").Pickup.Evidence, 3)
	ws := f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup)
	require.Len(t, ws, 1)
	assert.Equal(t, late[0].ID, ws[0].ID)
}

func TestVerification_RemoveFromWorkingSet(t *testing.T) {
	f := newVerificationFixture(t, newBooking("b1", domain.BookingStatusConfirmed))
	captured := f.capture(t, renter, "b1", domain.CheckpointPickup, 2)

	err := f.svc.Remove(context.Background(), owner, "b1", domain.CheckpointPickup, captured[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.svc.Remove(context.Background(), renter, "b1", domain.CheckpointPickup, captured[0].ID)
	require.NoError(t, err)

	ws := f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup)
	require.Len(t, ws, 1)
	assert.Equal(t, captured[1].ID, ws[0].ID)
}

func TestVerification_RemoveCommitted(t *testing.T) {
	seed := func(status domain.BookingStatus) *domain.Booking {
		b := newBooking("b1", status)
		legacy := durableEvidence("legacy", "", "")
		b.Pickup.Evidence = []domain.EvidenceRecord{
			durableEvidence("e1", renterID, domain.RoleRenter),
			durableEvidence("e2", ownerID, domain.RoleOwner),
			legacy,
		}
		b.Pickup.ConfirmedByRenter = domain.Confirmation{Confirmed: true}
		b.Pickup.ConfirmedByOwner = domain.Confirmation{Confirmed: true}
		return b
	}

	tests := []struct {
		name       string
		status     domain.BookingStatus
		actor      domain.Identity
		evidenceID string
		wantErr    error
	}{
		{name: "not the uploader", status: domain.BookingStatusConfirmed, actor: owner, evidenceID: "e1", wantErr: domain.ErrForbidden},
		{name: "legacy record belongs to renter", status: domain.BookingStatusConfirmed, actor: owner, evidenceID: "legacy", wantErr: domain.ErrForbidden},
		{name: "unknown record", status: domain.BookingStatusConfirmed, actor: renter, evidenceID: "nope", wantErr: domain.ErrEvidenceNotFound},
		{name: "stranger", status: domain.BookingStatusConfirmed, actor: domain.Identity{UserID: "x"}, evidenceID: "e1", wantErr: domain.ErrUnauthorized},
		{name: "frozen after pickup", status: domain.BookingStatusInProgress, actor: renter, evidenceID: "e1", wantErr: domain.ErrInvalidTransition},
		{name: "own record", status: domain.BookingStatusConfirmed, actor: renter, evidenceID: "e1"},
		{name: "own legacy record", status: domain.BookingStatusConfirmed, actor: renter, evidenceID: "legacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerificationFixture(t, seed(tt.status))

			err := f.svc.Remove(context.Background(), tt.actor, "b1", domain.CheckpointPickup, tt.evidenceID)

			stored := f.repo.get("b1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, stored.Pickup.Evidence, 3)
				return
			}
			require.NoError(t, err)
			assert.Len(t, stored.Pickup.Evidence, 2)
			assert.False(t, stored.Pickup.ConfirmedByRenter.Confirmed)
			assert.True(t, stored.Pickup.ConfirmedByOwner.Confirmed)
		})
	}
}

func TestVerification_SweepExpired(t *testing.T) {
	f := newVerificationFixture(t,
		newBooking("b1", domain.BookingStatusConfirmed),
		newBooking("b2", domain.BookingStatusConfirmed),
	)
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	f.svc.now = func() time.Time { return start }
	f.capture(t, renter, "b1", domain.CheckpointPickup, 2)

	f.svc.now = func() time.Time { return start.Add(90 * time.Minute) }
	f.capture(t, renter, "b2", domain.CheckpointPickup, 1)

	n := f.svc.SweepExpired(context.Background())

	assert.Equal(t, 2, n)
	assert.Empty(t, f.svc.WorkingSet(renter, "b1", domain.CheckpointPickup))
	assert.Len(t, f.svc.WorkingSet(renter, "b2", domain.CheckpointPickup), 1)
}
