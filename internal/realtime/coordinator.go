package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type UpdateType string

const (
	UpdateInvalidate UpdateType = "invalidate"
	UpdateResync     UpdateType = "resync"
)

// Update tells a watcher its view is stale and must be re-read.
type Update struct {
	Type      UpdateType `json:"type"`
	BookingID string     `json:"booking_id,omitempty"`
}

type SignalPublisher interface {
	PublishSignal(ctx context.Context, sig domain.Signal) error
}

// FeedOpener opens a fresh change feed subscription.
type FeedOpener func(ctx context.Context) (Feed, error)

type watcher struct {
	filter Filter
	fn     func(Update)
}

// Coordinator keeps cached views and connected devices consistent with the booking store.
// Delivery is best effort; correctness relies on readers re-reading after an Update.
type Coordinator struct {
	open      FeedOpener
	cache     *ViewCache
	publisher SignalPublisher
	logger    logger.Logger

	minBackoff time.Duration
	maxBackoff time.Duration

	mu       sync.RWMutex
	nextID   uint64
	watchers map[uint64]watcher
}

func NewCoordinator(open FeedOpener, cache *ViewCache, publisher SignalPublisher, log logger.Logger) *Coordinator {
	return &Coordinator{
		open:       open,
		cache:      cache,
		publisher:  publisher,
		logger:     log,
		minBackoff: 500 * time.Millisecond,
		maxBackoff: 30 * time.Second,
		watchers:   make(map[uint64]watcher),
	}
}

// Watch registers fn for changes matching f. fn runs on the feed goroutine and must not block.
func (c *Coordinator) Watch(f Filter, fn func(Update)) (cancel func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.watchers[id] = watcher{filter: f, fn: fn}
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.watchers, id)
			c.mu.Unlock()
		})
	}
}

// Run consumes the feed until ctx is done, re-opening it with backoff after failures.
func (c *Coordinator) Run(ctx context.Context) {
	delay := c.minBackoff
	opened := false

	for {
		feed, err := c.open(ctx)
		if err != nil {
			c.logger.Warn("failed to open change feed",
				logger.String("error", err.Error()),
				logger.Duration("retry_in", delay),
			)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, c.maxBackoff)
			continue
		}

		delay = c.minBackoff
		c.cache.Enable()
		if opened {
			// Changes made while the feed was down were never seen.
			c.handle(ctx, ChangeEvent{Resync: true})
		}
		opened = true
		c.logger.Info("change feed opened")

		c.consume(ctx, feed)
		_ = feed.Close()
		c.cache.Disable()

		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("change feed closed, reopening")
	}
}

func (c *Coordinator) consume(ctx context.Context, feed Feed) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-feed.Events():
			if !ok {
				return
			}
			c.handle(ctx, ev)
		}
	}
}

func (c *Coordinator) handle(ctx context.Context, ev ChangeEvent) {
	update := Update{Type: UpdateResync}
	if ev.Resync {
		c.cache.Purge()
		c.logger.Info("views resynced")
	} else {
		update = Update{Type: UpdateInvalidate, BookingID: ev.BookingID()}
		c.cache.Invalidate(ev.BookingID())
		c.cache.MarkListStale(ev.Parties()...)
		c.publish(ctx, Classify(ev.Old, ev.New))
	}

	c.mu.RLock()
	matched := make([]func(Update), 0, len(c.watchers))
	for _, w := range c.watchers {
		if w.filter.Match(ev) {
			matched = append(matched, w.fn)
		}
	}
	c.mu.RUnlock()

	for _, fn := range matched {
		fn(update)
	}
}

func (c *Coordinator) publish(ctx context.Context, signals []domain.Signal) {
	if c.publisher == nil {
		return
	}
	for _, sig := range signals {
		if err := c.publisher.PublishSignal(ctx, sig); err != nil {
			c.logger.Warn("failed to publish signal",
				logger.String("kind", string(sig.Kind)),
				logger.String("booking_id", sig.BookingID),
				logger.String("error", err.Error()),
			)
		}
	}
}
