package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Sink delivers a notification over one channel.
type Sink interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Fanout is the dispatcher handed to the services. Every sink runs in its own goroutine,
// detached from the request context; failures are logged and never reach the caller.
type Fanout struct {
	sinks  []Sink
	logger logger.Logger
	wg     sync.WaitGroup
}

func NewFanout(log logger.Logger, sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks, logger: log}
}

func (f *Fanout) Dispatch(ctx context.Context, n domain.Notification) {
	ctx = context.WithoutCancel(ctx)
	for _, s := range f.sinks {
		f.wg.Add(1)
		go func(s Sink) {
			defer f.wg.Done()
			if err := s.Notify(ctx, n); err != nil {
				f.logger.Error("notification failed",
					logger.String("sink", fmt.Sprintf("%T", s)),
					logger.String("booking_id", n.BookingID),
					logger.String("action", string(n.Action)),
					logger.String("error", err.Error()),
				)
			}
		}(s)
	}
}

// Wait blocks until every in-flight delivery has finished.
func (f *Fanout) Wait() {
	f.wg.Wait()
}
