package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reconciler interface {
	ReconcileStalled(ctx context.Context) ([]*domain.Booking, error)
}

type captureSweeper interface {
	SweepExpired(ctx context.Context) int
}

// Scheduler periodically repairs bookings left mutually confirmed but not advanced and
// drops abandoned captures.
type Scheduler struct {
	bookingService reconciler
	captures       captureSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService reconciler,
	captures captureSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		captures:       captures,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.reconcile(ctx)

	if n := s.captures.SweepExpired(ctx); n > 0 {
		s.logger.Info("expired captures dropped",
			logger.Int("count", n),
		)
	}
}

func (s *Scheduler) reconcile(ctx context.Context) {
	advanced, err := s.bookingService.ReconcileStalled(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile stalled bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range advanced {
		s.logger.Info("stalled booking advanced",
			logger.String("booking_id", b.ID),
			logger.String("status", string(b.Status)),
			logger.String("owner_id", b.OwnerID),
			logger.String("renter_id", b.RenterID),
		)
	}
}
