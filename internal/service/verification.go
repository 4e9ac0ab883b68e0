package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/RentalHandover/internal/capture"
	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxConditionReportLength = 2000

type advancer interface {
	Advance(ctx context.Context, b *domain.Booking, cp domain.Checkpoint, actor domain.Actor) (*domain.Booking, bool, error)
}

// VerificationService runs the pickup and return checkpoints for both parties.
type VerificationService struct {
	repo       ports.BookingRepo
	store      ports.EvidenceStore
	capturer   ports.EvidenceCapturer
	bookings   advancer
	dispatcher ports.Dispatcher
	sessions   *WorkingSets
	captureTTL time.Duration
	logger     logger.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

func NewVerificationService(
	repo ports.BookingRepo,
	store ports.EvidenceStore,
	capturer ports.EvidenceCapturer,
	bookings advancer,
	dispatcher ports.Dispatcher,
	sessions *WorkingSets,
	captureTTL time.Duration,
	logger logger.Logger,
) *VerificationService {
	return &VerificationService{
		repo:       repo,
		store:      store,
		capturer:   capturer,
		bookings:   bookings,
		dispatcher: dispatcher,
		sessions:   sessions,
		captureTTL: captureTTL,
		logger:     logger,
		tracer:     otel.Tracer("github.com/stpnv0/RentalHandover/internal/service"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Capture adds one photo to the caller's working set. Nothing is written to the booking.
func (s *VerificationService) Capture(
	ctx context.Context,
	id domain.Identity,
	bookingID string,
	cp domain.Checkpoint,
	cam capture.Camera,
) (domain.EvidenceRecord, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return domain.EvidenceRecord{}, fmt.Errorf("get booking: %w", err)
	}

	role, ok := b.RoleOf(id.UserID)
	if !ok {
		return domain.EvidenceRecord{}, domain.ErrUnauthorized
	}

	if b.Status != cp.OpenStatus() {
		return domain.EvidenceRecord{}, fmt.Errorf("%w: %s checkpoint is closed while booking is %s",
			domain.ErrInvalidTransition, cp, b.Status)
	}

	key := sessionKey{bookingID: bookingID, checkpoint: cp, actorID: id.UserID}
	if len(b.Checkpoint(cp).Evidence)+len(s.sessions.List(key)) >= domain.MaxEvidence(cp) {
		return domain.EvidenceRecord{}, fmt.Errorf("%w: %s allows at most %d records",
			domain.ErrEvidenceLimitExceeded, cp, domain.MaxEvidence(cp))
	}

	rec, err := s.capturer.Capture(ctx, cam, id.UserID, role)
	if err != nil {
		return domain.EvidenceRecord{}, fmt.Errorf("capture: %w", err)
	}
	s.sessions.Add(key, rec, s.now())

	return rec, nil
}

// WorkingSet lists the caller's captures that have not been submitted yet.
func (s *VerificationService) WorkingSet(id domain.Identity, bookingID string, cp domain.Checkpoint) []domain.EvidenceRecord {
	return s.sessions.List(sessionKey{bookingID: bookingID, checkpoint: cp, actorID: id.UserID})
}

// Submit uploads the caller's working set, records the caller's confirmation and, once both
// parties have confirmed, requests the checkpoint's transition.
func (s *VerificationService) Submit(ctx context.Context, id domain.Identity, in domain.SubmitInput) (*domain.SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Submit", trace.WithAttributes(
		attribute.String("booking.id", in.BookingID),
		attribute.String("checkpoint", string(in.Checkpoint)),
	))
	defer span.End()

	res, err := s.submit(ctx, id, in)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("outcome", string(res.Outcome)))

	return res, nil
}

func (s *VerificationService) submit(ctx context.Context, id domain.Identity, in domain.SubmitInput) (*domain.SubmitResult, error) {
	cp := in.Checkpoint
	report := strings.TrimSpace(in.ConditionReport)
	if len(report) > maxConditionReportLength {
		return nil, fmt.Errorf("%w: condition report is longer than %d characters", domain.ErrValidation, maxConditionReportLength)
	}
	if report != "" && cp != domain.CheckpointReturn {
		return nil, fmt.Errorf("%w: condition reports are only accepted at return", domain.ErrValidation)
	}

	b, err := s.repo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	role, ok := b.RoleOf(id.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key := sessionKey{bookingID: in.BookingID, checkpoint: cp, actorID: id.UserID}
	state := b.Checkpoint(cp)

	listed := s.sessions.List(key)
	var pending []domain.EvidenceRecord
	for _, rec := range listed {
		if _, dup := state.FindEvidence(rec.ID); !dup {
			pending = append(pending, rec)
		}
	}

	unchanged := state.ConfirmedBy(role).Confirmed && len(pending) == 0 && !reportChanges(b, role, report)
	if unchanged {
		s.sessions.Drop(key, recordIDs(listed))
		return s.aggregate(ctx, b.ID, cp, role, id)
	}

	if b.Status != cp.OpenStatus() {
		return nil, fmt.Errorf("%w: %s checkpoint is closed while booking is %s", domain.ErrInvalidTransition, cp, b.Status)
	}

	if err = checkEvidence(state, cp, role, pending, id.Admin); err != nil {
		return nil, err
	}

	durable, err := s.upload(ctx, key, id.UserID, pending)
	if err != nil {
		return nil, err
	}

	err = s.repo.ConfirmCheckpoint(ctx, domain.CheckpointSubmission{
		BookingID:       b.ID,
		Checkpoint:      cp,
		ActorID:         id.UserID,
		Role:            role,
		Evidence:        durable,
		ConditionReport: report,
		At:              s.now(),
	})
	if errors.Is(err, domain.ErrConcurrentTransitionLost) {
		return nil, fmt.Errorf("%w: booking left %s before the confirmation was written", domain.ErrInvalidTransition, cp.OpenStatus())
	}
	if err != nil {
		return nil, fmt.Errorf("confirm checkpoint: %w", err)
	}
	s.sessions.Drop(key, recordIDs(listed))

	s.logger.Info("checkpoint confirmed",
		logger.String("booking_id", b.ID),
		logger.String("checkpoint", string(cp)),
		logger.String("role", string(role)),
		logger.Int("evidence", len(durable)),
		logger.Any("condition_report", report != ""),
	)

	res, err := s.aggregate(ctx, b.ID, cp, role, id)
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, domain.Notification{
		BookingID: b.ID,
		Action:    domain.CheckpointAction(cp),
		ActorID:   id.UserID,
	})

	return res, nil
}

// aggregate re-reads the booking from the store, so the counterpart's flag and both report
// channels are the committed values rather than what the caller saw before writing.
func (s *VerificationService) aggregate(
	ctx context.Context,
	bookingID string,
	cp domain.Checkpoint,
	role domain.Role,
	id domain.Identity,
) (*domain.SubmitResult, error) {
	fresh, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("re-read booking: %w", err)
	}

	res := &domain.SubmitResult{Booking: fresh, Outcome: checkpointOutcome(fresh, cp)}
	if res.Outcome == domain.OutcomeWait || fresh.Status != cp.OpenStatus() {
		return res, nil
	}

	updated, applied, err := s.bookings.Advance(ctx, fresh, cp, domain.Actor{UserID: id.UserID, Role: role, Admin: id.Admin})
	if err != nil {
		return nil, fmt.Errorf("advance booking: %w", err)
	}
	res.Booking = updated
	res.Transitioned = applied
	res.Outcome = checkpointOutcome(updated, cp)

	return res, nil
}

// upload makes every pending record durable. On failure the records already uploaded stay
// durable in the working set so the next attempt skips them.
func (s *VerificationService) upload(ctx context.Context, key sessionKey, actorID string, records []domain.EvidenceRecord) ([]domain.EvidenceRecord, error) {
	out := make([]domain.EvidenceRecord, len(records))
	copy(out, records)

	attemptAt := s.now()
	for i, rec := range out {
		if rec.Media.Durable() {
			continue
		}

		url, err := s.store.Upload(ctx, domain.UploadRequest{
			BookingID: key.bookingID,
			ActorID:   actorID,
			AttemptAt: attemptAt,
			Seq:       i,
			Record:    rec,
		})
		if err != nil {
			s.sessions.Update(key, out[:i], s.now())
			s.logger.Warn("submission aborted, evidence upload failed",
				logger.String("booking_id", key.bookingID),
				logger.String("evidence_id", rec.ID),
				logger.Int("uploaded", i),
				logger.Int("total", len(out)),
			)
			if errors.Is(err, domain.ErrUploadFailed) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
		}

		out[i] = rec.MarkDurable(url, s.now())
		if err = s.capturer.Discard(rec.Media.Handle); err != nil {
			s.logger.Warn("failed to discard spooled capture",
				logger.String("evidence_id", rec.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return out, nil
}

// Remove deletes a record from a working set or from the checkpoint. Only the attributed
// uploader may do so, and only while the checkpoint's transition has not committed.
func (s *VerificationService) Remove(ctx context.Context, id domain.Identity, bookingID string, cp domain.Checkpoint, evidenceID string) error {
	if rec, owner, ok := s.sessions.Lookup(bookingID, cp, evidenceID); ok {
		if owner != id.UserID {
			return domain.ErrForbidden
		}
		s.sessions.Remove(sessionKey{bookingID: bookingID, checkpoint: cp, actorID: owner}, evidenceID)
		if !rec.Media.Durable() {
			if err := s.capturer.Discard(rec.Media.Handle); err != nil {
				s.logger.Warn("failed to discard spooled capture",
					logger.String("evidence_id", rec.ID),
					logger.String("error", err.Error()),
				)
			}
		}
		return nil
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if _, ok := b.RoleOf(id.UserID); !ok {
		return domain.ErrUnauthorized
	}

	rec, ok := b.Checkpoint(cp).FindEvidence(evidenceID)
	if !ok {
		return domain.ErrEvidenceNotFound
	}
	if rec.AttributedUploader(b) != id.UserID {
		return domain.ErrForbidden
	}
	if b.Status != cp.OpenStatus() {
		return fmt.Errorf("%w: %s evidence is frozen while booking is %s", domain.ErrInvalidTransition, cp, b.Status)
	}

	err = s.repo.RemoveEvidence(ctx, domain.EvidenceRemoval{
		BookingID:  bookingID,
		Checkpoint: cp,
		EvidenceID: evidenceID,
		Role:       rec.AttributedRole(),
	})
	if errors.Is(err, domain.ErrConcurrentTransitionLost) {
		return fmt.Errorf("%w: %s evidence is frozen", domain.ErrInvalidTransition, cp)
	}
	if err != nil {
		return fmt.Errorf("remove evidence: %w", err)
	}

	s.logger.Info("evidence removed",
		logger.String("booking_id", bookingID),
		logger.String("checkpoint", string(cp)),
		logger.String("evidence_id", evidenceID),
	)

	return nil
}

// SweepExpired drops working sets nobody touched within the capture TTL.
func (s *VerificationService) SweepExpired(context.Context) int {
	expired := s.sessions.Expire(s.now().Add(-s.captureTTL))
	for _, rec := range expired {
		if rec.Media.Durable() {
			continue
		}
		if err := s.capturer.Discard(rec.Media.Handle); err != nil {
			s.logger.Warn("failed to discard expired capture",
				logger.String("evidence_id", rec.ID),
				logger.String("error", err.Error()),
			)
		}
	}
	return len(expired)
}

func recordIDs(records []domain.EvidenceRecord) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return ids
}

func checkEvidence(state *domain.CheckpointState, cp domain.Checkpoint, role domain.Role, pending []domain.EvidenceRecord, admin bool) error {
	total := len(state.Evidence) + len(pending)
	if limit := domain.MaxEvidence(cp); total > limit {
		return fmt.Errorf("%w: %s allows at most %d records, got %d", domain.ErrEvidenceLimitExceeded, cp, limit, total)
	}
	if admin {
		return nil
	}

	switch cp {
	case domain.CheckpointPickup:
		if role != domain.RoleRenter {
			return nil
		}
		n := state.CountBy(domain.RoleRenter) + len(pending)
		if n < domain.PickupMinRenterEvidence {
			return fmt.Errorf("%w: pickup needs %d renter photos, got %d",
				domain.ErrInsufficientEvidence, domain.PickupMinRenterEvidence, n)
		}
	case domain.CheckpointReturn:
		if total < domain.ReturnMinEvidence {
			return fmt.Errorf("%w: return needs %d photos, got %d",
				domain.ErrInsufficientEvidence, domain.ReturnMinEvidence, total)
		}
	}

	return nil
}

func checkpointOutcome(b *domain.Booking, cp domain.Checkpoint) domain.Outcome {
	state := b.Checkpoint(cp)
	if cp == domain.CheckpointPickup {
		if state.BothConfirmed() {
			return domain.OutcomeComplete
		}
		return domain.OutcomeWait
	}
	return domain.DetectOutcome(state.BothConfirmed(), b.HasDamageReport(), b.HasOwnerNotes())
}

func reportChanges(b *domain.Booking, role domain.Role, report string) bool {
	if report == "" {
		return false
	}
	if role == domain.RoleRenter {
		return report != b.DamageReport.Text
	}
	return report != b.OwnerNotes
}
