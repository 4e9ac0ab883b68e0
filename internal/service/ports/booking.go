package ports

import (
	"context"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

// BookingRepo is the authoritative store. Every mutation is a conditional write: when the
// expected pre-state no longer holds it returns domain.ErrConcurrentTransitionLost.
type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListStalled(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, t domain.Transition) error
	ConfirmCheckpoint(ctx context.Context, s domain.CheckpointSubmission) error
	RemoveEvidence(ctx context.Context, r domain.EvidenceRemoval) error
}

// BookingViews is the client-side cache of booking views, invalidated by the change feed.
type BookingViews interface {
	Booking(ctx context.Context, id string, load func(context.Context) (*domain.Booking, error)) (*domain.Booking, error)
	UserBookings(ctx context.Context, userID string, load func(context.Context) ([]*domain.Booking, error)) ([]*domain.Booking, error)
}
