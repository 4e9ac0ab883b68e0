package realtime

import (
	"context"
	"sync"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

// ViewCache is a read-through cache of booking detail and list views. Entries are dropped
// by the change feed; while the feed is down the cache is bypassed entirely.
// Cached bookings are shared between readers and must not be mutated.
type ViewCache struct {
	mu       sync.Mutex
	enabled  bool
	gen      uint64
	bookings map[string]*domain.Booking
	lists    map[string][]*domain.Booking
}

func NewViewCache() *ViewCache {
	return &ViewCache{
		bookings: make(map[string]*domain.Booking),
		lists:    make(map[string][]*domain.Booking),
	}
}

func (c *ViewCache) Booking(
	ctx context.Context,
	id string,
	load func(context.Context) (*domain.Booking, error),
) (*domain.Booking, error) {
	c.mu.Lock()
	if b, ok := c.bookings[id]; ok {
		c.mu.Unlock()
		return b, nil
	}
	gen, enabled := c.gen, c.enabled
	c.mu.Unlock()

	b, err := load(ctx)
	if err != nil || !enabled {
		return b, err
	}

	c.mu.Lock()
	// An invalidation during the load may have been for this very booking.
	if c.enabled && c.gen == gen {
		c.bookings[id] = b
	}
	c.mu.Unlock()

	return b, nil
}

func (c *ViewCache) UserBookings(
	ctx context.Context,
	userID string,
	load func(context.Context) ([]*domain.Booking, error),
) ([]*domain.Booking, error) {
	c.mu.Lock()
	if list, ok := c.lists[userID]; ok {
		c.mu.Unlock()
		return list, nil
	}
	gen, enabled := c.gen, c.enabled
	c.mu.Unlock()

	list, err := load(ctx)
	if err != nil || !enabled {
		return list, err
	}

	c.mu.Lock()
	if c.enabled && c.gen == gen {
		c.lists[userID] = list
	}
	c.mu.Unlock()

	return list, nil
}

// Invalidate discards the detail view of a booking outright.
func (c *ViewCache) Invalidate(bookingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	delete(c.bookings, bookingID)
}

// MarkListStale forces the next list read for each user to hit the store.
func (c *ViewCache) MarkListStale(userIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for _, id := range userIDs {
		delete(c.lists, id)
	}
}

func (c *ViewCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeLocked()
}

// Enable starts caching; Disable purges and bypasses the cache until re-enabled.
func (c *ViewCache) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

func (c *ViewCache) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
	c.purgeLocked()
}

func (c *ViewCache) purgeLocked() {
	c.gen++
	clear(c.bookings)
	clear(c.lists)
}
