package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxTransitionAttempts bounds re-decisions after a lost conditional write.
const maxTransitionAttempts = 3

const maxReasonLength = 500

type BookingService struct {
	repo       ports.BookingRepo
	views      ports.BookingViews
	dispatcher ports.Dispatcher
	logger     logger.Logger
	now        func() time.Time
}

func NewBookingService(
	repo ports.BookingRepo,
	views ports.BookingViews,
	dispatcher ports.Dispatcher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:       repo,
		views:      views,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Get(ctx context.Context, id domain.Identity, bookingID string) (*domain.Booking, error) {
	b, err := s.views.Booking(ctx, bookingID, func(ctx context.Context) (*domain.Booking, error) {
		return s.repo.GetByID(ctx, bookingID)
	})
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if _, ok := b.RoleOf(id.UserID); !ok && !id.Admin {
		return nil, domain.ErrUnauthorized
	}

	return b, nil
}

func (s *BookingService) ListByUser(ctx context.Context, id domain.Identity) ([]*domain.Booking, error) {
	return s.views.UserBookings(ctx, id.UserID, func(ctx context.Context) ([]*domain.Booking, error) {
		return s.repo.ListByUser(ctx, id.UserID)
	})
}

func (s *BookingService) Approve(ctx context.Context, id domain.Identity, bookingID string) (*domain.Booking, error) {
	return s.act(ctx, id, bookingID, domain.EventApprove, "", domain.ActionApprove)
}

func (s *BookingService) Reject(ctx context.Context, id domain.Identity, bookingID, reason string) (*domain.Booking, error) {
	return s.act(ctx, id, bookingID, domain.EventReject, reason, domain.ActionReject)
}

func (s *BookingService) Cancel(ctx context.Context, id domain.Identity, bookingID, reason string) (*domain.Booking, error) {
	return s.act(ctx, id, bookingID, domain.EventCancel, reason, domain.ActionCancel)
}

// Resolve closes a dispute on behalf of an operator.
func (s *BookingService) Resolve(ctx context.Context, id domain.Identity, bookingID string, complete bool, note string) (*domain.Booking, error) {
	if !id.Admin {
		return nil, domain.ErrForbidden
	}

	ev := domain.EventResolveCancel
	if complete {
		ev = domain.EventResolveComplete
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	res, _, err := s.apply(ctx, b, ev, domain.Actor{UserID: id.UserID, Admin: true}, note)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *BookingService) act(
	ctx context.Context,
	id domain.Identity,
	bookingID string,
	ev domain.BookingEvent,
	reason string,
	action domain.Action,
) (*domain.Booking, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxReasonLength {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", domain.ErrValidation, maxReasonLength)
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	role, ok := b.RoleOf(id.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	res, applied, err := s.apply(ctx, b, ev, domain.Actor{UserID: id.UserID, Role: role, Admin: id.Admin}, reason)
	if err != nil {
		return nil, err
	}

	if applied {
		s.dispatcher.Dispatch(ctx, domain.Notification{
			BookingID: bookingID,
			Action:    action,
			ActorID:   id.UserID,
		})
	}

	return res, nil
}

// Advance requests the transition for a mutually confirmed checkpoint. b must be freshly
// read from the store. Losing the conditional write to a concurrent submitter is not an error.
func (s *BookingService) Advance(ctx context.Context, b *domain.Booking, cp domain.Checkpoint, actor domain.Actor) (*domain.Booking, bool, error) {
	return s.apply(ctx, b, domain.CheckpointEvent(cp), actor, "")
}

// ReconcileStalled advances bookings whose checkpoint is mutually confirmed but whose
// status never moved, e.g. when a submitter died between its flag write and the transition.
func (s *BookingService) ReconcileStalled(ctx context.Context) ([]*domain.Booking, error) {
	stalled, err := s.repo.ListStalled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stalled: %w", err)
	}

	var advanced []*domain.Booking
	for _, b := range stalled {
		cp, ok := b.StalledCheckpoint()
		if !ok {
			continue
		}

		res, applied, err := s.Advance(ctx, b, cp, domain.Actor{System: true})
		if err != nil {
			s.logger.Error("failed to reconcile booking",
				logger.String("booking_id", b.ID),
				logger.String("checkpoint", string(cp)),
				logger.String("error", err.Error()),
			)
			continue
		}
		if applied {
			advanced = append(advanced, res)
		}
	}

	if len(advanced) > 0 {
		s.logger.Info("stalled bookings reconciled",
			logger.Int("count", len(advanced)),
		)
	}

	return advanced, nil
}

// apply validates ev against the graph and commits it with a conditional write keyed on the
// expected prior status. When the write is lost it re-reads: if the status moved, another writer
// won and this is a no-op. Only a report guard race on an unchanged status is decided again.
func (s *BookingService) apply(
	ctx context.Context,
	b *domain.Booking,
	ev domain.BookingEvent,
	actor domain.Actor,
	reason string,
) (*domain.Booking, bool, error) {
	current := b
	for attempt := 1; ; attempt++ {
		tr, err := domain.Next(current, ev, actor)
		if err != nil {
			return nil, false, err
		}
		tr.Reason = reason
		tr.At = s.now()

		err = s.repo.UpdateStatus(ctx, tr)
		if err == nil {
			s.logger.Info("booking transitioned",
				logger.String("booking_id", tr.BookingID),
				logger.String("event", string(tr.Event)),
				logger.String("from", string(tr.From)),
				logger.String("to", string(tr.To)),
				logger.String("actor_id", actor.UserID),
			)
			return s.commitView(current, tr), true, nil
		}
		if !errors.Is(err, domain.ErrConcurrentTransitionLost) {
			return nil, false, fmt.Errorf("update status: %w", err)
		}

		fresh, err := s.repo.GetByID(ctx, current.ID)
		if err != nil {
			return nil, false, fmt.Errorf("re-read booking: %w", err)
		}

		if fresh.Status != tr.From {
			s.logger.Debug("transition lost to another writer",
				logger.String("booking_id", fresh.ID),
				logger.String("event", string(ev)),
				logger.String("status", string(fresh.Status)),
			)
			return fresh, false, nil
		}
		if attempt >= maxTransitionAttempts {
			return fresh, false, nil
		}
		current = fresh
	}
}

// commitView projects a committed transition onto the booking that was decided on.
func (s *BookingService) commitView(b *domain.Booking, tr domain.Transition) *domain.Booking {
	res := *b
	res.Status = tr.To
	res.UpdatedAt = tr.At

	at := tr.At
	switch tr.To {
	case domain.BookingStatusConfirmed:
		res.ConfirmedAt = &at
	case domain.BookingStatusInProgress:
		res.StartedAt = &at
	case domain.BookingStatusDisputed:
		res.DisputedAt = &at
	case domain.BookingStatusCompleted:
		res.CompletedAt = &at
	case domain.BookingStatusCancelled:
		res.CancelledAt = &at
		res.CancellationReason = tr.Reason
	}

	return &res
}
